package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-prodigy-backend/config"
	v1 "go-prodigy-backend/internal/delivery/http/v1"
	"go-prodigy-backend/internal/delivery/http/response"
	"go-prodigy-backend/internal/domain"
	"go-prodigy-backend/internal/usecase"
	"go-prodigy-backend/pkg/apperror"
	"go-prodigy-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init(false)
	os.Exit(m.Run())
}

// Mock ContactUsecase
type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) (*domain.ContactReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactReceipt), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:                   "development",
		StaticDir:                "./testdata",
		RateLimitWindowSeconds:   60,
		RateLimitContactRequests: 100,
	}
}

func newRouter(uc domain.ContactUsecase, cfg *config.Config) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: uc,
		HealthUC:  usecase.NewHealthUsecase(cfg),
		Config:    cfg,
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) response.DeliveryResult {
	t.Helper()
	var result response.DeliveryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestSubmitContact_Success(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(&domain.ContactReceipt{
		Message:   "Thank you for your message! We'll get back to you within 24 hours.",
		Timestamp: time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC),
	}, nil)

	router := newRouter(uc, testConfig())
	w := postContact(router, `{"name":"Al","email":"user@example.com","projectType":"web-app","message":"Please build me a site for my bakery."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "Thank you for your message")
	assert.Equal(t, "2026-03-14T09:26:53Z", result.Timestamp)
}

func TestSubmitContact_MalformedBody(t *testing.T) {
	uc := new(MockContactUC)
	router := newRouter(uc, testConfig())

	w := postContact(router, `{"name": "Al"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	uc.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
}

func TestSubmitContact_ValidationFault(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil,
		apperror.Validation("Please check your form data.", []apperror.FieldViolation{
			{Field: "name", Message: "Name must be at least 2 characters"},
			{Field: "message", Message: "Message must be at least 10 characters"},
		}))

	router := newRouter(uc, testConfig())
	w := postContact(router, `{"name":"A","email":"user@example.com","projectType":"web-app","message":"too short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Success)
	assert.Equal(t, "Please check your form data.", result.Error)
	require.Len(t, result.ValidationErrors, 2)
	assert.Equal(t, "name", result.ValidationErrors[0].Field)
	assert.Equal(t, "message", result.ValidationErrors[1].Field)
}

func TestSubmitContact_TransportFault(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil,
		apperror.Unavailable("Email service temporarily unavailable. Please try again later.", assert.AnError))

	router := newRouter(uc, testConfig())
	w := postContact(router, `{"name":"Al","email":"user@example.com","projectType":"web-app","message":"Please build me a site for my bakery."}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Success)
	assert.Equal(t, "Email service temporarily unavailable. Please try again later.", result.Error)
	// Development mode surfaces the diagnostic detail
	assert.NotEmpty(t, result.Details)
}

func TestSubmitContact_ProductionHidesDetails(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil,
		apperror.Config("Server configuration error. Please contact the administrator.", assert.AnError))

	cfg := testConfig()
	cfg.AppEnv = "production"

	router := newRouter(uc, cfg)
	w := postContact(router, `{"name":"Al","email":"user@example.com","projectType":"web-app","message":"Please build me a site for my bakery."}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Success)
	assert.Empty(t, result.Details)
}

func TestContactPreflight(t *testing.T) {
	uc := new(MockContactUC)
	router := newRouter(uc, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestHealthCheck(t *testing.T) {
	uc := new(MockContactUC)
	router := newRouter(uc, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "unconfigured", body["mailer"])
}

func TestContactRateLimit(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("SendContactMessage", mock.Anything, mock.Anything).Return(&domain.ContactReceipt{
		Message:   "ok",
		Timestamp: time.Now().UTC(),
	}, nil)

	cfg := testConfig()
	cfg.RateLimitContactRequests = 2

	router := newRouter(uc, cfg)
	body := `{"name":"Al","email":"user@example.com","projectType":"web-app","message":"Please build me a site for my bakery."}`

	assert.Equal(t, http.StatusOK, postContact(router, body).Code)
	assert.Equal(t, http.StatusOK, postContact(router, body).Code)

	w := postContact(router, body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	result := decodeResult(t, w)
	assert.False(t, result.Success)
}
