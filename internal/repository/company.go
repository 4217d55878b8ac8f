package repository

import (
	"context"

	"saas-signup-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// GetByCompanyID retrieves a company by its external identifier
func (r *CompanyRepository) GetByCompanyID(ctx context.Context, companyID string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "company_id = ?", companyID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Create inserts a company unless one with the same company_id already exists.
// An existing row is left untouched, including its name.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "company_id"}}, DoNothing: true}).
		Create(company).Error
}
