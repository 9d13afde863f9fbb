package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-prodigy-backend/internal/usecase"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler registers the health probe route
func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health Check
// @Description  Reports service status and whether the contact mailer is configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
