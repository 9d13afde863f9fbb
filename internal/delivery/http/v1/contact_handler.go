package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-prodigy-backend/internal/delivery/http/response"
	"go-prodigy-backend/internal/domain"
	"go-prodigy-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", rateLimit, handler.SubmitContact)
	public.OPTIONS("/contact", handler.Preflight)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.DeliveryResult
// @Failure      400      {object}  response.DeliveryResult
// @Failure      500      {object}  response.DeliveryResult
// @Failure      503      {object}  response.DeliveryResult
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body. Expected JSON."))
		return
	}

	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, receipt.Message, receipt.Timestamp)
}

// Preflight answers CORS preflight for the contact endpoint with the fixed
// allow-list; the CORS middleware has already written the headers.
func (h *ContactHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
