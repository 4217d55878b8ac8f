package handlers

import (
	"net/http"
	"strconv"

	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApproverHeader identifies who approves a user when the tenant admin policy is on
const ApproverHeader = "X-Approver-ID"

// UserHandler handles the JSON approval queue endpoints
type UserHandler struct {
	service service.ApprovalServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.ApprovalServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ApproveResponse is the body returned after an approval
type ApproveResponse struct {
	Message string               `json:"message" example:"user approved"`
	User    service.UserResponse `json:"user"`
}

// ListPending handles GET /users/pending/:company_id
// @Summary List pending users of a company
// @Description Returns the users awaiting approval ordered by id. An unknown company returns an empty list.
// @Tags users
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} service.UserResponse
// @Failure 500 {object} ErrorResponse "Failed to fetch pending users"
// @Router /users/pending/{company_id} [get]
func (h *UserHandler) ListPending(c *gin.Context) {
	ctx := logger.ContextWithCompanyID(c.Request.Context(), c.Param("company_id"))

	users, err := service.CollectPending(h.service.ListPending(ctx, c.Param("company_id")))
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to list pending users")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to fetch pending users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Approve handles POST /users/:id/approve
// @Summary Approve a user
// @Description Sets the user's status to active. Approving an active user succeeds again.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param X-Approver-ID header string false "Approving admin's user id (tenant_admin policy)"
// @Success 200 {object} ApproveResponse
// @Failure 403 {object} ErrorResponse "Approver not allowed"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Approval failed"
// @Router /users/{id}/approve [post]
func (h *UserHandler) Approve(c *gin.Context) {
	// A malformed or out of range id can never match a user
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: apperrors.ErrUserNotFound.Error()})
		return
	}

	user, err := h.service.Approve(c.Request.Context(), uint(id), c.GetHeader(ApproverHeader))
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
		default:
			logger.WithContext(c.Request.Context()).WithError(err).WithField("user_id", id).Error("failed to approve user")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "approval failed"})
		}
		return
	}

	c.JSON(http.StatusOK, ApproveResponse{Message: "user approved", User: *user})
}
