package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"red-remodels-backend/config"
	"red-remodels-backend/internal/domain"
)

var (
	// ErrNotConfigured means the SMTP relay settings are missing. The
	// mailer is constructed anyway so the rest of the site keeps
	// serving; every send fails with this error instead.
	ErrNotConfigured = errors.New("mail transport is not configured")

	// ErrNoRecipients means no destination address is configured. Kept
	// distinct from transport failures so the pipeline can report it
	// as a configuration problem.
	ErrNoRecipients = errors.New("no recipient address configured")
)

// SMTPMailer ships composed messages through an authenticated SMTP
// relay. It implements domain.MailSender.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       []string
	cc       []string
	secure   bool
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.MailFrom,
		to:       cfg.MailTo,
		cc:       cfg.MailCC,
		secure:   cfg.SMTPSecure,
	}
}

// IsConfigured checks whether the relay settings are present.
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send delivers the message to the configured recipients with the
// submitter set as Reply-To.
func (m *SMTPMailer) Send(ctx context.Context, mail *domain.OutboundEmail) error {
	if !m.IsConfigured() {
		return ErrNotConfigured
	}
	if len(m.to) == 0 {
		return ErrNoRecipients
	}

	msg := m.buildMessage(mail)

	client, err := m.dial(ctx)
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp MAIL failed: %w", err)
	}
	for _, rcpt := range append(append([]string{}, m.to...), m.cc...) {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT failed for %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close failed: %w", err)
	}

	return client.Quit()
}

// dial connects to the relay, using implicit TLS when configured and
// opportunistic STARTTLS otherwise.
func (m *SMTPMailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(m.host, m.port)
	tlsConfig := &tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}

	if m.secure {
		conn, err := (&tls.Dialer{
			NetDialer: &net.Dialer{Timeout: 10 * time.Second},
			Config:    tlsConfig,
		}).DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, m.host)
	}

	conn, err := (&net.Dialer{Timeout: 10 * time.Second}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, err
		}
	}
	return client, nil
}

// buildMessage constructs a multipart/alternative MIME message so text
// and HTML carry the same content.
func (m *SMTPMailer) buildMessage(mail *domain.OutboundEmail) []byte {
	const boundary = "contact-alt-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	if len(m.cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(m.cc, ", "))
	}
	fmt.Fprintf(&b, "Reply-To: %s <%s>\r\n", mail.ReplyName, mail.ReplyEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", mail.Payload.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(mail.Payload.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(mail.Payload.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
