package repository

import (
	"context"
	"iter"

	"saas-signup-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	GetByCompanyID(ctx context.Context, companyID string) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)
	Approve(ctx context.Context, id uint) (*models.User, error)
	IteratePending(ctx context.Context, companyID string) iter.Seq2[models.User, error]
}

// TransactionManagerInterface runs work inside a database transaction that is
// serialized with every other transaction opened for the same company.
type TransactionManagerInterface interface {
	WithinCompanyTx(ctx context.Context, companyID string, fn func(repos Repositories) error) error
}

// Repositories bundles the repositories bound to one transaction
type Repositories struct {
	Companies CompanyRepositoryInterface
	Users     UserRepositoryInterface
}
