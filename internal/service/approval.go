package service

import (
	"context"
	"errors"
	"iter"

	"saas-signup-backend/internal/database/models"
	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/repository"

	"gorm.io/gorm"
)

// ApprovalService handles the approval queue
type ApprovalService struct {
	users  repository.UserRepositoryInterface
	policy ApprovalPolicy
}

// NewApprovalService creates a new approval service. A nil policy approves
// without any check.
func NewApprovalService(users repository.UserRepositoryInterface, policy ApprovalPolicy) *ApprovalService {
	if policy == nil {
		policy = OpenApprovalPolicy{}
	}
	return &ApprovalService{
		users:  users,
		policy: policy,
	}
}

// UserResponse is the public projection of a user
type UserResponse struct {
	ID     uint              `json:"id"`
	Email  string            `json:"email"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
}

// Approve marks the user active. Approving an already active user succeeds.
func (s *ApprovalService) Approve(ctx context.Context, userID uint, approverID string) (*UserResponse, error) {
	if err := s.policy.Authorize(ctx, approverID, userID); err != nil {
		return nil, err
	}

	user, err := s.users.Approve(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewPersistenceError("approve user", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"company_id": user.CompanyID,
		"user_id":    user.ID,
	}).Info("user approved")

	return toUserResponse(user), nil
}

// ListPending returns the pending users of a company ordered by id. The
// sequence is lazy and can be ranged more than once; each range queries again.
// An unknown company yields an empty sequence.
func (s *ApprovalService) ListPending(ctx context.Context, companyID string) iter.Seq2[UserResponse, error] {
	return func(yield func(UserResponse, error) bool) {
		for user, err := range s.users.IteratePending(ctx, companyID) {
			if err != nil {
				yield(UserResponse{}, apperrors.NewPersistenceError("list pending users", err))
				return
			}
			if !yield(*toUserResponse(&user), nil) {
				return
			}
		}
	}
}

// CollectPending drains a pending-user sequence into a slice. It never returns
// a nil slice so an empty result encodes as [].
func CollectPending(seq iter.Seq2[UserResponse, error]) ([]UserResponse, error) {
	users := []UserResponse{}
	for user, err := range seq {
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}
