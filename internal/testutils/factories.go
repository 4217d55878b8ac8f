package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"saas-signup-backend/internal/database/models"
)

var factorySeq atomic.Uint64

func nextSeq() uint64 {
	return factorySeq.Add(1)
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with a unique company_id
func (f *CompanyFactory) Create() *models.Company {
	n := nextSeq()
	return &models.Company{
		CompanyID: fmt.Sprintf("company%03d", n),
		Name:      fmt.Sprintf("Test Company %d", n),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithID creates a test Company with the given company_id and name
func (f *CompanyFactory) WithID(companyID, name string) *models.Company {
	company := f.Create()
	company.CompanyID = companyID
	company.Name = name
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a pending staff user with a unique email.
// The ID is left zero so the database assigns it.
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		CompanyID: "company001",
		Email:     fmt.Sprintf("user%d@test.com", n),
		Password:  "$2a$04$7yQhD8yXbq0a7bq4eM5bWOiQ0w2Zr5Yk8x1bKpRkYb8QmJ0oQdV1K",
		Role:      models.UserRoleStaff,
		Status:    models.UserStatusPending,
	}
}

// PendingStaff creates a pending staff user for the given company
func (f *UserFactory) PendingStaff(companyID string) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	return user
}

// ActiveAdmin creates an active admin for the given company
func (f *UserFactory) ActiveAdmin(companyID string) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	user.Role = models.UserRoleAdmin
	user.Status = models.UserStatusActive
	return user
}

// FactorySet bundles all factories used by the tests
type FactorySet struct {
	Company *CompanyFactory
	User    *UserFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company: NewCompanyFactory(),
		User:    NewUserFactory(),
	}
}
