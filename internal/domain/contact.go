package domain

import (
	"context"
	"strings"
	"time"
)

// ContactSubmission represents one contact form payload submitted by a site
// visitor. The struct is bound straight from the request body, so every field
// is untrusted until it has passed validation.
type ContactSubmission struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	ProjectType string `json:"projectType" validate:"required,max=100"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

// Normalized returns a copy with surrounding whitespace stripped from every
// field and the email lower-cased. Normalizing an already-normalized
// submission yields the same value.
func (s ContactSubmission) Normalized() ContactSubmission {
	return ContactSubmission{
		Name:        strings.TrimSpace(s.Name),
		Email:       strings.ToLower(strings.TrimSpace(s.Email)),
		ProjectType: strings.TrimSpace(s.ProjectType),
		Message:     strings.TrimSpace(s.Message),
	}
}

// EmailMessage is a rendered contact notification: a subject line plus the
// rich body and its plain-text alternative for clients without HTML support.
type EmailMessage struct {
	Subject string
	HTML    string
	Text    string
}

// ContactReceipt acknowledges one successfully delivered submission.
type ContactReceipt struct {
	Message   string
	Timestamp time.Time
}

// MailTransport delivers rendered messages through the configured relay.
// Verify probes the connection and authentication without sending anything;
// callers must not attempt Send against a transport that failed Verify.
type MailTransport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg EmailMessage, replyTo string) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and dispatches the
	// notification email, returning a receipt on success.
	SendContactMessage(ctx context.Context, req *ContactSubmission) (*ContactReceipt, error)
}
