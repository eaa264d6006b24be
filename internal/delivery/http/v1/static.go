package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"red-remodels-backend/config"
	"red-remodels-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// StaticFallback resolves unmatched GET requests against the public
// root, single-page-app style: exact file, then file + ".html", then
// the root index document. The API surface never falls back to HTML;
// unmatched methods there get the JSON 404 shape.
func StaticFallback(cfg *config.Config) gin.HandlerFunc {
	publicDir := cfg.PublicDir
	indexFile := filepath.Join(publicDir, "index.html")

	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path

		// Only the contact route itself speaks JSON for unmatched
		// methods; every other GET resolves against the static site.
		if reqPath == cfg.ContactRoute {
			response.Error(c, http.StatusNotFound, "Not Found")
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, http.StatusNotFound, "Not Found")
			return
		}

		// Clean with a forced leading slash so ".." cannot escape the
		// public root.
		rel := path.Clean("/" + reqPath)
		filePath := filepath.Join(publicDir, filepath.FromSlash(rel))

		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			c.File(filePath)
			return
		}
		if info, err := os.Stat(filePath + ".html"); err == nil && !info.IsDir() {
			c.File(filePath + ".html")
			return
		}

		c.File(indexFile)
	}
}
