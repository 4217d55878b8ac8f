package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UIHandler serves the server-rendered approval pages. The engine must have
// the web templates loaded.
type UIHandler struct {
	service service.ApprovalServiceInterface
}

// NewUIHandler creates a new UI handler
func NewUIHandler(service service.ApprovalServiceInterface) *UIHandler {
	return &UIHandler{service: service}
}

type pendingPage struct {
	CompanyID  string
	ApproverID string
	Users      []service.UserResponse
}

type errorPage struct {
	Message   string
	CompanyID string
}

// Pending handles GET /ui/pending?company_id=
func (h *UIHandler) Pending(c *gin.Context) {
	companyID := c.Query("company_id")
	if companyID == "" {
		c.HTML(http.StatusOK, "prompt.html", nil)
		return
	}

	ctx := logger.ContextWithCompanyID(c.Request.Context(), companyID)
	users, err := service.CollectPending(h.service.ListPending(ctx, companyID))
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to render pending users")
		c.HTML(http.StatusInternalServerError, "error.html", errorPage{Message: "Failed to fetch pending users"})
		return
	}

	c.HTML(http.StatusOK, "pending.html", pendingPage{
		CompanyID:  companyID,
		ApproverID: c.Query("approver_id"),
		Users:      users,
	})
}

// Approve handles the approve form POST /ui/approve and redirects back to the list.
// An unknown user is ignored so a double submit lands on the list again.
func (h *UIHandler) Approve(c *gin.Context) {
	userID := c.PostForm("user_id")
	companyID := c.PostForm("company_id")
	if userID == "" || companyID == "" {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	id, err := strconv.ParseUint(userID, 10, 63)
	if err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	ctx := logger.ContextWithCompanyID(c.Request.Context(), companyID)
	approverID := c.PostForm("approver_id")
	if _, err := h.service.Approve(ctx, uint(id), approverID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
		case apperrors.IsAuthorization(err):
			c.HTML(http.StatusForbidden, "error.html", errorPage{Message: err.Error(), CompanyID: companyID})
			return
		default:
			logger.WithContext(ctx).WithError(err).WithField("user_id", id).Error("failed to approve user")
			c.HTML(http.StatusInternalServerError, "error.html", errorPage{Message: "Approval failed", CompanyID: companyID})
			return
		}
	}

	target := "/ui/pending?company_id=" + url.QueryEscape(companyID)
	if approverID != "" {
		target += "&approver_id=" + url.QueryEscape(approverID)
	}
	c.Redirect(http.StatusFound, target)
}
