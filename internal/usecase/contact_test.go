package usecase_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-prodigy-backend/config"
	"go-prodigy-backend/internal/domain"
	"go-prodigy-backend/internal/usecase"
	"go-prodigy-backend/pkg/apperror"
	"go-prodigy-backend/pkg/logger"
	"go-prodigy-backend/pkg/validation"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

// Mock Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTransport) Send(ctx context.Context, msg domain.EmailMessage, replyTo string) error {
	return m.Called(ctx, msg, replyTo).Error(0)
}

func mailerConfig() *config.Config {
	return &config.Config{
		AppEnv:          "development",
		SMTPHost:        "smtp.example.com",
		SMTPPort:        "587",
		SMTPUsername:    "relay-user",
		SMTPPassword:    "relay-pass",
		SMTPFromEmail:   "noreply@prodigylabs.dev",
		ContactEmailTo:  "hello@prodigylabs.dev",
		SMTPTimeoutSecs: 10,
	}
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:        "Al",
		Email:       " USER@Example.com ",
		ProjectType: "web-app",
		Message:     "Please build me a site for my bakery.",
	}
}

func TestSendContactMessage_Success(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Verify", mock.Anything).Return(nil)
	transport.On("Send", mock.Anything, mock.Anything, "user@example.com").Return(nil)

	uc := usecase.NewContactUsecase(mailerConfig(), validation.New(), transport)

	receipt, err := uc.SendContactMessage(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Contains(t, receipt.Message, "Thank you for your message")
	assert.False(t, receipt.Timestamp.IsZero())

	transport.AssertExpectations(t)

	// The rendered subject carries the project type and submitter name
	sendCall := transport.Calls[1]
	msg := sendCall.Arguments.Get(1).(domain.EmailMessage)
	assert.Contains(t, msg.Subject, "web-app")
	assert.Contains(t, msg.Subject, "Al")
}

func TestSendContactMessage_ValidationFault(t *testing.T) {
	transport := new(MockTransport)
	uc := usecase.NewContactUsecase(mailerConfig(), validation.New(), transport)

	req := &domain.ContactSubmission{
		Name:        "A",
		Email:       "user@example.com",
		ProjectType: "web-app",
		Message:     "too short",
	}

	_, err := uc.SendContactMessage(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	fields := make([]string, 0, len(appErr.Violations))
	for _, v := range appErr.Violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "message")

	// No side effect may precede successful validation
	transport.AssertNotCalled(t, "Verify", mock.Anything)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendContactMessage_WhitespaceCannotDefeatLengthRules(t *testing.T) {
	transport := new(MockTransport)
	uc := usecase.NewContactUsecase(mailerConfig(), validation.New(), transport)

	req := &domain.ContactSubmission{
		Name:        "   A   ",
		Email:       "user@example.com",
		ProjectType: "web-app",
		Message:     "         too short          ",
	}

	_, err := uc.SendContactMessage(context.Background(), req)
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestSendContactMessage_ConfigFault(t *testing.T) {
	cfg := mailerConfig()
	cfg.SMTPPassword = ""
	cfg.ContactEmailTo = ""

	transport := new(MockTransport)
	uc := usecase.NewContactUsecase(cfg, validation.New(), transport)

	_, err := uc.SendContactMessage(context.Background(), validSubmission())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Server configuration error. Please contact the administrator.", appErr.Message)
	// Field names may be diagnosed; values never appear
	assert.Contains(t, appErr.Err.Error(), "SMTP_PASSWORD")
	assert.NotContains(t, appErr.Err.Error(), "relay-pass")

	// The gateway must never be touched on a configuration fault
	transport.AssertNotCalled(t, "Verify", mock.Anything)
	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendContactMessage_VerifyFailureShortCircuitsSend(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Verify", mock.Anything).Return(assert.AnError)

	uc := usecase.NewContactUsecase(mailerConfig(), validation.New(), transport)

	_, err := uc.SendContactMessage(context.Background(), validSubmission())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Equal(t, "Email service temporarily unavailable. Please try again later.", appErr.Message)

	transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendContactMessage_SendFault(t *testing.T) {
	transport := new(MockTransport)
	transport.On("Verify", mock.Anything).Return(nil)
	transport.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	uc := usecase.NewContactUsecase(mailerConfig(), validation.New(), transport)

	_, err := uc.SendContactMessage(context.Background(), validSubmission())
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
}
