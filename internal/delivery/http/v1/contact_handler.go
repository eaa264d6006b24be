package v1

import (
	"context"
	"net/http"
	"time"

	"red-remodels-backend/internal/delivery/http/response"
	"red-remodels-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth
// required). The rate limiter guards only this route.
func NewContactHandler(r *gin.Engine, route string, limiter gin.HandlerFunc, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST(route, limiter, handler.SubmitContact)
}

// SubmitContact accepts a JSON or form-encoded submission and runs the
// pipeline. A body that cannot be bound is treated as an empty
// submission and rejected by validation with the friendly message
// instead of a parser error.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	_ = c.ShouldBind(&req)

	ctx := context.WithValue(c.Request.Context(), domain.KeyClientIP, c.ClientIP())
	ctx = context.WithValue(ctx, domain.KeyUserAgent, c.GetHeader("User-Agent"))
	if id, ok := c.Get("RequestID"); ok {
		if idStr, ok := id.(string); ok {
			ctx = context.WithValue(ctx, domain.KeyRequestID, idStr)
		}
	}

	message, err := h.contactUC.Submit(ctx, &req, time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message)
}
