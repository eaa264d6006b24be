package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"red-remodels-backend/internal/domain"
)

const (
	defaultFormID = "more-info"
	defaultSource = "website"

	submittedAtLayout = "Jan 2, 2006 3:04:05 PM MST"
)

// contactEmailTemplate is the HTML template for contact form emails.
// All user-supplied values are escaped by html/template; the message
// body additionally goes through nl2br, which escapes before inserting
// line breaks.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #b42318; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #b42318; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Request</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div class="value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{nl2br .Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Form ID: {{.FormID}} &middot; Source: {{.Source}}</p>
            <p>Submitted At: {{.SubmittedAt}}</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var htmlTemplate = template.Must(template.New("contact").Funcs(template.FuncMap{
	"nl2br": func(value string) template.HTML {
		escaped := template.HTMLEscapeString(value)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}).Parse(contactEmailTemplate))

type templateData struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	FormID      string
	Source      string
	SubmittedAt string
}

// Composer builds the outbound message bodies from a validated
// submission. Compose is pure: identical submission and timestamp
// produce identical payloads.
type Composer struct {
	subject string
}

func NewComposer(subject string) *Composer {
	return &Composer{subject: subject}
}

func (c *Composer) Compose(sub *domain.ContactSubmission, now time.Time) (*domain.EmailPayload, error) {
	data := templateData{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       orDefault(sub.Phone, "N/A"),
		Message:     orDefault(sub.Message, "N/A"),
		FormID:      orDefault(sub.FormID, defaultFormID),
		Source:      orDefault(sub.Source, defaultSource),
		SubmittedAt: now.Format(submittedAtLayout),
	}

	lines := []string{
		"New contact request from the Red Remodels website.",
		"",
		"Name: " + data.Name,
		"Email: " + data.Email,
		"Phone: " + data.Phone,
		"",
		"Message:",
		data.Message,
		"",
		"Form ID: " + data.FormID,
		"Source: " + data.Source,
		"Submitted At: " + data.SubmittedAt,
	}

	var body bytes.Buffer
	if err := htmlTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &domain.EmailPayload{
		Subject: c.subject,
		Text:    strings.Join(lines, "\n"),
		HTML:    body.String(),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
