package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/domain"
	"go-prodigy-backend/pkg/apperror"
	"go-prodigy-backend/pkg/email"
	"go-prodigy-backend/pkg/logger"
	"go-prodigy-backend/pkg/validation"
)

const successMessage = "Thank you for your message! We'll get back to you within 24 hours."

type contactUsecase struct {
	cfg       *config.Config
	validate  *validator.Validate
	transport domain.MailTransport
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(cfg *config.Config, validate *validator.Validate, transport domain.MailTransport) domain.ContactUsecase {
	return &contactUsecase{
		cfg:       cfg,
		validate:  validate,
		transport: transport,
	}
}

// SendContactMessage runs the submission pipeline: normalize and validate the
// payload, confirm the mailer is configured, verify the relay, then render
// and send. Every failure is classified into an apperror so nothing reaches
// the client unstructured.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) (*domain.ContactReceipt, error) {
	normalized := req.Normalized()
	if err := uc.validate.Struct(normalized); err != nil {
		return nil, apperror.Validation("Please check your form data.", validation.Violations(err))
	}

	// Configuration gaps are a deployment fault, never a client error. Field
	// names are safe to log; values are not.
	if missing := uc.cfg.MissingMailerFields(); len(missing) > 0 {
		logger.Log.Error("Contact mailer misconfigured", "missing", missing)
		return nil, apperror.Config(
			"Server configuration error. Please contact the administrator.",
			fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", ")),
		)
	}

	// Never attempt delivery against an unverified transport.
	if err := uc.transport.Verify(ctx); err != nil {
		return nil, apperror.Unavailable(
			"Email service temporarily unavailable. Please try again later.",
			fmt.Errorf("SMTP verification failed: %w", err),
		)
	}

	now := time.Now().UTC()
	msg, err := email.Render(normalized, now)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to render contact email: %w", err))
	}

	if err := uc.transport.Send(ctx, msg, normalized.Email); err != nil {
		return nil, apperror.Unavailable(
			"Email service temporarily unavailable. Please try again later.",
			fmt.Errorf("SMTP send failed: %w", err),
		)
	}

	logger.Log.Info("Contact submission delivered", "projectType", normalized.ProjectType)

	return &domain.ContactReceipt{
		Message:   successMessage,
		Timestamp: now,
	}, nil
}
