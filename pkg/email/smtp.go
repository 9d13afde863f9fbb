package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/domain"
)

const fromDisplayName = "Prodigy Labs Contact Form"

// SMTPTransport delivers contact notifications through an authenticated SMTP
// relay. Each call opens a fresh connection; there is no pooling and no
// internal retry. Implicit TLS is used on port 465, STARTTLS otherwise.
type SMTPTransport struct {
	host       string
	port       string
	username   string
	password   string
	fromEmail  string
	toEmail    string
	timeout    time.Duration
	skipVerify bool
}

// NewSMTPTransport builds a transport from the loaded configuration.
// Certificate verification stays enabled unless explicitly disabled via
// SMTP_TLS_SKIP_VERIFY.
func NewSMTPTransport(cfg *config.Config) *SMTPTransport {
	timeout := time.Duration(cfg.SMTPTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &SMTPTransport{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		fromEmail:  cfg.SMTPFromEmail,
		toEmail:    cfg.ContactEmailTo,
		timeout:    timeout,
		skipVerify: cfg.SMTPTLSSkipVerify,
	}
}

// Verify probes the relay: dial, negotiate TLS, authenticate, quit. No
// message is sent. A failure here means Send would fail the same way, so
// callers short-circuit on it.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Quit(); err != nil {
		return fmt.Errorf("failed to close SMTP session: %w", err)
	}
	return nil
}

// Send dispatches exactly one message to the configured recipient with the
// submitter's address as Reply-To.
func (t *SMTPTransport) Send(ctx context.Context, msg domain.EmailMessage, replyTo string) error {
	payload, err := t.buildMessage(msg, replyTo)
	if err != nil {
		return err
	}

	client, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(t.fromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(t.toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data stream: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize message: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("failed to close SMTP session: %w", err)
	}
	return nil
}

// connect dials the relay within the configured timeout and returns an
// authenticated client. The connection deadline covers the whole transaction,
// not just the dial.
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, t.port)
	tlsConfig := &tls.Config{
		ServerName:         t.host,
		InsecureSkipVerify: t.skipVerify,
	}

	dialer := net.Dialer{Timeout: t.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	_ = conn.SetDeadline(time.Now().Add(t.timeout))

	// Port 465 expects TLS from the first byte; everything else upgrades via STARTTLS.
	if t.port == "465" {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if t.port != "465" {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				client.Close()
				return nil, fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	auth := smtp.PlainAuth("", t.username, t.password, t.host)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return client, nil
}

// buildMessage assembles the multipart/alternative MIME payload: plain text
// first, HTML second, so capable clients prefer the rich body.
func (t *SMTPTransport) buildMessage(msg domain.EmailMessage, replyTo string) ([]byte, error) {
	var body bytes.Buffer
	alt := multipart.NewWriter(&body)

	textPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(msg.Text)); err != nil {
		return nil, fmt.Errorf("failed to write text part: %w", err)
	}

	htmlPart, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create html part: %w", err)
	}
	if _, err := htmlPart.Write([]byte(msg.HTML)); err != nil {
		return nil, fmt.Errorf("failed to write html part: %w", err)
	}

	if err := alt.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", fromDisplayName), t.fromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", t.toEmail)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	// Priority headers for deliverability, matching the site's previous mailer
	buf.WriteString("X-Priority: 1\r\n")
	buf.WriteString("X-MSMail-Priority: High\r\n")
	buf.WriteString("Importance: high\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", alt.Boundary())
	buf.WriteString("\r\n")
	buf.Write(body.Bytes())

	return buf.Bytes(), nil
}
