package domain

import (
	"context"
	"time"
)

// ContactRequest is the wire shape of a contact form submission. Every
// field is optional at the transport layer; the usecase decides what is
// acceptable. The _honey and company fields are honeypots that stay
// empty when a human fills the form.
type ContactRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	Message        string `json:"message" form:"message"`
	RecaptchaToken string `json:"recaptchaToken" form:"recaptchaToken"`
	FormID         string `json:"formId" form:"formId"`
	Source         string `json:"source" form:"source"`
	Honey          string `json:"_honey" form:"_honey"`
	Company        string `json:"company" form:"company"`
}

// ContactSubmission is a normalized, validated submission. It is only
// ever constructed on the validate-accept path.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
	FormID  string
	Source  string
}

// EmailPayload is a composed message, generated deterministically from
// a submission and a timestamp. It is never persisted.
type EmailPayload struct {
	Subject string
	Text    string
	HTML    string
}

// OutboundEmail is what the delivery transport ships: the composed
// payload plus the submitter identity for the Reply-To header.
type OutboundEmail struct {
	Payload    EmailPayload
	ReplyName  string
	ReplyEmail string
}

// VerdictStatus tags the outcome of a human-verification check.
type VerdictStatus int

const (
	// VerdictSkipped means no verification secret is configured; the
	// pipeline treats this as acceptance.
	VerdictSkipped VerdictStatus = iota
	VerdictAccepted
	VerdictRejected
)

// CaptchaVerdict is the result of redeeming a proof-of-humanity token.
type CaptchaVerdict struct {
	Status VerdictStatus
	// Score is set when the service reported a numeric trust score.
	Score *float64
	// Reason is a safe, user-facing message, set on rejection.
	Reason string
}

// CaptchaVerifier redeems a client token against the challenge service.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) CaptchaVerdict
}

// MailSender delivers a composed message through the outbound relay.
type MailSender interface {
	Send(ctx context.Context, mail *OutboundEmail) error
}

// ContactUsecase runs the full submission pipeline. On success it
// returns the configured confirmation message; on rejection it returns
// an error that carries the HTTP status and a safe message.
type ContactUsecase interface {
	Submit(ctx context.Context, req *ContactRequest, now time.Time) (string, error)
}
