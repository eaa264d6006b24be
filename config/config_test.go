package config_test

import (
	"testing"

	"red-remodels-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/api/contact", cfg.ContactRoute)
	assert.Equal(t, "Thanks! We will be in touch shortly.", cfg.SuccessMessage)
	assert.Equal(t, "We were unable to process your request.", cfg.ErrorMessage)
	assert.Equal(t, 10, cfg.RateLimitMax)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.InDelta(t, 0.5, cfg.RecaptchaMinScore, 0.001)
	assert.Equal(t, "587", cfg.SMTPPort)
}

func TestLoadConfigLists(t *testing.T) {
	t.Setenv("MAIL_TO", " office@example.com, leads@example.com ,")
	t.Setenv("MAIL_CC", "")
	t.Setenv("CORS_ORIGIN", "https://www.example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"office@example.com", "leads@example.com"}, cfg.MailTo)
	assert.Empty(t, cfg.MailCC)
	assert.Equal(t, []string{"https://www.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfigMailFromFallsBackToSMTPUser(t *testing.T) {
	t.Setenv("SMTP_USER", "relay@example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "relay@example.com", cfg.MailFrom)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("contact route must be absolute", func(t *testing.T) {
		t.Setenv("CONTACT_ROUTE", "api/contact")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("min score must stay within range", func(t *testing.T) {
		t.Setenv("RECAPTCHA_MIN_SCORE", "1.5")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
