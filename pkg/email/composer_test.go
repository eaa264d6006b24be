package email_test

import (
	"strings"
	"testing"
	"time"

	"red-remodels-backend/internal/domain"
	"red-remodels-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 28, 10, 30, 0, 0, time.UTC)

func TestComposeContent(t *testing.T) {
	composer := email.NewComposer("Website: info request")

	sub := &domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Message: "Need a quote",
		FormID:  "footer-form",
		Source:  "landing-page",
	}

	payload, err := composer.Compose(sub, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Website: info request", payload.Subject)

	// Text and HTML carry the same semantic content.
	for _, body := range []string{payload.Text, payload.HTML} {
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, body, "jane@example.com")
		assert.Contains(t, body, "555-0100")
		assert.Contains(t, body, "Need a quote")
		assert.Contains(t, body, "footer-form")
		assert.Contains(t, body, "landing-page")
		assert.Contains(t, body, "May 28, 2024")
	}
}

func TestComposeDefaults(t *testing.T) {
	composer := email.NewComposer("subject")

	payload, err := composer.Compose(&domain.ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello",
	}, fixedNow)
	require.NoError(t, err)

	assert.Contains(t, payload.Text, "Phone: N/A")
	assert.Contains(t, payload.Text, "Form ID: more-info")
	assert.Contains(t, payload.Text, "Source: website")
	assert.Contains(t, payload.HTML, "more-info")
	assert.Contains(t, payload.HTML, "website")
}

func TestComposeDeterministic(t *testing.T) {
	composer := email.NewComposer("subject")
	sub := &domain.ContactSubmission{Name: "Jane", Email: "jane@example.com", Message: "Hi"}

	first, err := composer.Compose(sub, fixedNow)
	require.NoError(t, err)
	second, err := composer.Compose(sub, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeEscapesMarkup(t *testing.T) {
	composer := email.NewComposer("subject")

	sub := &domain.ContactSubmission{
		Name:    `<b>Jane & "Co"</b>`,
		Email:   "jane@example.com",
		Message: `<script>alert('xss')</script>`,
	}

	payload, err := composer.Compose(sub, fixedNow)
	require.NoError(t, err)

	assert.NotContains(t, payload.HTML, "<script>")
	assert.NotContains(t, payload.HTML, "<b>Jane")
	assert.Contains(t, payload.HTML, "&lt;script&gt;")
	assert.Contains(t, payload.HTML, "&amp;")
	// Quotes from user input never survive unescaped.
	assert.False(t, strings.Contains(payload.HTML, `"Co"`))
	assert.False(t, strings.Contains(payload.HTML, "alert('xss')"))
}
