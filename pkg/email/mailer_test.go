package email_test

import (
	"context"
	"testing"

	"red-remodels-backend/config"
	"red-remodels-backend/internal/domain"
	"red-remodels-backend/pkg/email"

	"github.com/stretchr/testify/assert"
)

func outbound() *domain.OutboundEmail {
	return &domain.OutboundEmail{
		Payload:    domain.EmailPayload{Subject: "s", Text: "t", HTML: "<p>t</p>"},
		ReplyName:  "Jane Doe",
		ReplyEmail: "jane@example.com",
	}
}

func TestMailerNotConfigured(t *testing.T) {
	mailer := email.NewSMTPMailer(&config.Config{})
	assert.False(t, mailer.IsConfigured())

	err := mailer.Send(context.Background(), outbound())
	assert.ErrorIs(t, err, email.ErrNotConfigured)
}

func TestMailerNoRecipients(t *testing.T) {
	mailer := email.NewSMTPMailer(&config.Config{
		SMTPHost: "smtp.example.com",
		SMTPPort: "587",
		SMTPUser: "relay@example.com",
		SMTPPass: "secret",
		MailFrom: "relay@example.com",
		// MailTo deliberately empty
	})
	assert.True(t, mailer.IsConfigured())

	err := mailer.Send(context.Background(), outbound())
	assert.ErrorIs(t, err, email.ErrNoRecipients)
}
