package service

import (
	"context"
	"errors"

	"saas-signup-backend/internal/database/models"
	apperrors "saas-signup-backend/internal/errors"
	"saas-signup-backend/internal/logger"
	"saas-signup-backend/internal/metrics"
	"saas-signup-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RegistrationService handles company-scoped signups
type RegistrationService struct {
	tx        repository.TransactionManagerInterface
	hasher    PasswordHasher
	validator *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(tx repository.TransactionManagerInterface, hasher PasswordHasher, validator *validator.Validate) *RegistrationService {
	return &RegistrationService{
		tx:        tx,
		hasher:    hasher,
		validator: validator,
	}
}

// RegisterRequest represents a signup under a company. The company is created
// with CompanyName when CompanyID is new.
type RegisterRequest struct {
	CompanyID   string `json:"company_id" form:"company_id" validate:"required"`
	CompanyName string `json:"company_name" form:"company_name" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required"`
	Password    string `json:"password" form:"password" validate:"required"`
}

// RegisterResponse reports the role and status assigned to the new user
type RegisterResponse struct {
	UserID uint              `json:"-"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
}

// Register creates the user and, when needed, its company. The first user of a
// company becomes an active admin; later users are pending staff.
func (s *RegistrationService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var resp *RegisterResponse
	err = s.tx.WithinCompanyTx(ctx, req.CompanyID, func(repos repository.Repositories) error {
		_, err := repos.Companies.GetByCompanyID(ctx, req.CompanyID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewPersistenceError("look up company", err)
			}
			company := &models.Company{CompanyID: req.CompanyID, Name: req.CompanyName}
			if err := repos.Companies.Create(ctx, company); err != nil {
				return apperrors.NewPersistenceError("create company", err)
			}
		}

		count, err := repos.Users.CountByCompany(ctx, req.CompanyID)
		if err != nil {
			return apperrors.NewPersistenceError("count users", err)
		}

		role := models.RoleForExistingUsers(count)
		user := &models.User{
			CompanyID: req.CompanyID,
			Email:     req.Email,
			Password:  hash,
			Role:      role,
			Status:    models.InitialStatus(role),
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return apperrors.NewPersistenceError("create user", err)
		}

		resp = &RegisterResponse{UserID: user.ID, Role: user.Role, Status: user.Status}
		return nil
	})
	if err != nil {
		if !apperrors.IsPersistence(err) {
			err = apperrors.NewPersistenceError("register", err)
		}
		return nil, err
	}

	metrics.ObserveRegistration(string(resp.Role))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"company_id": req.CompanyID,
		"user_id":    resp.UserID,
		"role":       resp.Role,
	}).Info("user registered")

	return resp, nil
}

// validate reports the first missing field in request order
func (s *RegistrationService) validate(req *RegisterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewMissingFieldError(jsonFieldNames[verrs[0].StructField()])
		}
		return apperrors.NewValidationError("request", err.Error())
	}
	return nil
}

var jsonFieldNames = map[string]string{
	"CompanyID":   "company_id",
	"CompanyName": "company_name",
	"Email":       "email",
	"Password":    "password",
}
