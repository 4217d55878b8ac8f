//go:build integration

package repository

import (
	"context"
	"testing"

	"saas-signup-backend/internal/database/models"
	"saas-signup-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryIntegrationTestSuite exercises the repositories against Postgres
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	base      *testutils.PostgresFixture
	factories *testutils.FactorySet
	companies *CompanyRepository
	users     *UserRepository
	ctx       context.Context
}

// SetupSuite starts (or reuses) the shared Postgres container
func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	s.base = testutils.SharedPostgres(s.T())
	s.factories = testutils.NewFactorySet()
	s.companies = NewCompanyRepository(s.base.DB)
	s.users = NewUserRepository(s.base.DB)
	s.ctx = context.Background()
}

// SetupTest starts every test from empty tables
func (s *RepositoryIntegrationTestSuite) SetupTest() {
	s.base.Reset()
}

func (s *RepositoryIntegrationTestSuite) seedCompany(companyID string) {
	s.Require().NoError(s.companies.Create(s.ctx, s.factories.Company.WithID(companyID, "Acme")))
}

// TestCompanyCreateKeepsExisting checks the conditional insert
func (s *RepositoryIntegrationTestSuite) TestCompanyCreateKeepsExisting() {
	s.seedCompany("c1")
	s.Require().NoError(s.companies.Create(s.ctx, s.factories.Company.WithID("c1", "Other")))

	company, err := s.companies.GetByCompanyID(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Acme", company.Name)
}

// TestIteratePendingOrderAndFilter checks ordering, tenant and status filtering, and restartability
func (s *RepositoryIntegrationTestSuite) TestIteratePendingOrderAndFilter() {
	s.seedCompany("c1")
	s.seedCompany("c2")

	admin := s.factories.User.ActiveAdmin("c1")
	first := s.factories.User.PendingStaff("c1")
	other := s.factories.User.PendingStaff("c2")
	second := s.factories.User.PendingStaff("c1")
	for _, u := range []*models.User{admin, first, other, second} {
		s.Require().NoError(s.users.Create(s.ctx, u))
	}

	seq := s.users.IteratePending(s.ctx, "c1")
	for range 2 {
		var ids []uint
		for user, err := range seq {
			s.Require().NoError(err)
			ids = append(ids, user.ID)
		}
		s.Equal([]uint{first.ID, second.ID}, ids)
	}
}

// TestApproveIsIdempotent checks that approving twice keeps the user active
func (s *RepositoryIntegrationTestSuite) TestApproveIsIdempotent() {
	s.seedCompany("c1")
	user := s.factories.User.PendingStaff("c1")
	s.Require().NoError(s.users.Create(s.ctx, user))

	for range 2 {
		approved, err := s.users.Approve(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal(models.UserStatusActive, approved.Status)
		s.Equal(user.Email, approved.Email)
	}

	_, err := s.users.Approve(s.ctx, user.ID+100)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountByCompany checks the per-company count
func (s *RepositoryIntegrationTestSuite) TestCountByCompany() {
	s.seedCompany("c1")
	s.Require().NoError(s.users.Create(s.ctx, s.factories.User.ActiveAdmin("c1")))
	s.Require().NoError(s.users.Create(s.ctx, s.factories.User.PendingStaff("c1")))

	count, err := s.users.CountByCompany(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	count, err = s.users.CountByCompany(s.ctx, "nope")
	s.Require().NoError(err)
	s.Zero(count)
}

// TestRepositoryIntegrationTestSuite runs the test suite
func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
