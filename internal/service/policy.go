package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"saas-signup-backend/internal/config"
	"saas-signup-backend/internal/database/models"
	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/repository"

	"gorm.io/gorm"
)

// OpenApprovalPolicy lets anyone approve any user
type OpenApprovalPolicy struct{}

// Authorize always allows the approval
func (OpenApprovalPolicy) Authorize(context.Context, string, uint) error {
	return nil
}

// TenantAdminApprovalPolicy only lets an active admin of the target user's
// company approve it. The approver is identified by its user id.
type TenantAdminApprovalPolicy struct {
	users repository.UserRepositoryInterface
}

// NewTenantAdminApprovalPolicy creates a new tenant admin policy
func NewTenantAdminApprovalPolicy(users repository.UserRepositoryInterface) *TenantAdminApprovalPolicy {
	return &TenantAdminApprovalPolicy{users: users}
}

// Authorize checks the approver against the target user. An unknown target is
// reported as not found so the caller sees the same 404 as without a policy.
func (p *TenantAdminApprovalPolicy) Authorize(ctx context.Context, approverID string, userID uint) error {
	approverID = strings.TrimSpace(approverID)
	if approverID == "" {
		return apperrors.ErrApproverRequired
	}

	target, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewPersistenceError("look up user", err)
	}

	id, err := strconv.ParseUint(approverID, 10, 63)
	if err != nil {
		return apperrors.ErrApproverNotAdmin
	}
	approver, err := p.users.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApproverNotAdmin
		}
		return apperrors.NewPersistenceError("look up approver", err)
	}

	if approver.CompanyID != target.CompanyID {
		return apperrors.ErrApproverOtherCompany
	}
	if approver.Role != models.UserRoleAdmin || approver.Status != models.UserStatusActive {
		return apperrors.ErrApproverNotAdmin
	}
	return nil
}

// NewApprovalPolicy returns the policy named by config.ApprovalPolicy*
func NewApprovalPolicy(name string, users repository.UserRepositoryInterface) (ApprovalPolicy, error) {
	switch name {
	case "", config.ApprovalPolicyOpen:
		return OpenApprovalPolicy{}, nil
	case config.ApprovalPolicyTenantAdmin:
		return NewTenantAdminApprovalPolicy(users), nil
	}
	return nil, apperrors.ErrUnknownApprovalPolicy
}
