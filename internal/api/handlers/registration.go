package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for signups
type RegistrationHandler struct {
	service service.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service service.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegisterResponse is the body returned after a successful signup
type RegisterResponse struct {
	Message string `json:"message" example:"registration completed"`
	Role    string `json:"role" example:"admin"`
	Status  string `json:"status" example:"active"`
}

// Register handles POST /register
// @Summary Register a user under a company
// @Description Creates the company when company_id is new. The first user of a company becomes an active admin, later users are pending staff.
// @Tags registration
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registration body service.RegisterRequest true "Signup data"
// @Success 200 {object} RegisterResponse "Registered"
// @Failure 400 {object} map[string]interface{} "Missing required field"
// @Failure 500 {object} ErrorResponse "Registration failed"
// @Router /register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	// An empty body is treated as a request with every field missing
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	ctx := logger.ContextWithCompanyID(c.Request.Context(), req.CompanyID)
	resp, err := h.service.Register(ctx, &req)
	if err != nil {
		var missing *apperrors.MissingFieldError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields", "field": missing.Field})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
			return
		}
		logger.WithContext(ctx).WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "registration failed"})
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{
		Message: "registration completed",
		Role:    string(resp.Role),
		Status:  string(resp.Status),
	})
}
