package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"red-remodels-backend/config"
	"red-remodels-backend/internal/domain"
	"red-remodels-backend/pkg/apperror"
	"red-remodels-backend/pkg/email"
	"red-remodels-backend/pkg/security"
	"red-remodels-backend/pkg/validation"
)

// User-facing rejection messages. These are safe to return verbatim.
const (
	msgSpamDetected  = "Spam detected."
	msgMissingFields = "Please fill out your name, email, and a short message."
	msgInvalidEmail  = "Please provide a valid email address."
	msgNotConfigured = "Mail transport is not configured. Please try again later."
	msgNoRecipients  = "No recipient address configured for contact form."
)

type contactUsecase struct {
	composer *email.Composer
	sender   domain.MailSender
	verifier domain.CaptchaVerifier

	successMessage string
	errorMessage   string
}

// NewContactUsecase wires the submission pipeline: honeypot check,
// validation, human verification, composition, delivery. Stages are
// ordered cheap-first so rejectable requests never reach the network.
func NewContactUsecase(cfg *config.Config, sender domain.MailSender, verifier domain.CaptchaVerifier) domain.ContactUsecase {
	return &contactUsecase{
		composer:       email.NewComposer(cfg.MailSubject),
		sender:         sender,
		verifier:       verifier,
		successMessage: cfg.SuccessMessage,
		errorMessage:   cfg.ErrorMessage,
	}
}

func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest, now time.Time) (string, error) {
	// Honeypot fields are inspected raw, before any normalization, and
	// answered with a generic rejection carrying no diagnostic detail.
	if req.Honey != "" || req.Company != "" {
		uc.audit(ctx, security.EventSpamDetected, nil)
		return "", apperror.BadRequest(msgSpamDetected)
	}

	sub, err := validateSubmission(req)
	if err != nil {
		uc.audit(ctx, security.EventValidationFailed, map[string]interface{}{"reason": err.Error()})
		return "", err
	}

	verdict := uc.verifier.Verify(ctx, req.RecaptchaToken)
	if verdict.Status == domain.VerdictRejected {
		details := map[string]interface{}{"reason": verdict.Reason}
		if verdict.Score != nil {
			details["score"] = *verdict.Score
		}
		uc.audit(ctx, security.EventCaptchaRejected, details)
		return "", apperror.BadRequest(verdict.Reason)
	}

	payload, err := uc.composer.Compose(sub, now)
	if err != nil {
		return "", apperror.Internal(uc.errorMessage, err)
	}

	mail := &domain.OutboundEmail{
		Payload:    *payload,
		ReplyName:  sub.Name,
		ReplyEmail: sub.Email,
	}
	if err := uc.sender.Send(ctx, mail); err != nil {
		uc.audit(ctx, security.EventDeliveryFailed, map[string]interface{}{"error": err.Error()})
		switch {
		case errors.Is(err, email.ErrNotConfigured):
			return "", apperror.New(http.StatusInternalServerError, msgNotConfigured, err)
		case errors.Is(err, email.ErrNoRecipients):
			return "", apperror.New(http.StatusInternalServerError, msgNoRecipients, err)
		default:
			return "", apperror.Internal(uc.errorMessage, err)
		}
	}

	return uc.successMessage, nil
}

// validateSubmission normalizes the free-text fields and enforces the
// required-field and email-shape rules. A ContactSubmission is only
// constructed when every check passes.
func validateSubmission(req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	name := validation.Sanitize(req.Name)
	emailAddr := validation.Sanitize(req.Email)
	message := validation.Sanitize(req.Message)

	if name == "" || emailAddr == "" || message == "" {
		return nil, apperror.BadRequest(msgMissingFields)
	}
	if !validation.IsValidEmail(emailAddr) {
		return nil, apperror.BadRequest(msgInvalidEmail)
	}

	return &domain.ContactSubmission{
		Name:    name,
		Email:   emailAddr,
		Phone:   validation.Sanitize(req.Phone),
		Message: message,
		FormID:  validation.Sanitize(req.FormID),
		Source:  validation.Sanitize(req.Source),
	}, nil
}

func (uc *contactUsecase) audit(ctx context.Context, event security.EventType, details map[string]interface{}) {
	ip, _ := ctx.Value(domain.KeyClientIP).(string)
	ua, _ := ctx.Value(domain.KeyUserAgent).(string)
	reqID, _ := ctx.Value(domain.KeyRequestID).(string)

	security.DefaultLogger().Log(security.SecurityEvent{
		Event:     event,
		IP:        ip,
		UserAgent: ua,
		RequestID: reqID,
		Details:   details,
	})
}
