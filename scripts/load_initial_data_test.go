package main

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"saas-signup-backend/internal/database/models"
	"saas-signup-backend/internal/mocks"
	"saas-signup-backend/internal/service"
	"saas-signup-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadCompanies(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "companies.yaml"), []byte(`
companies:
  - company_id: c1
    company_name: Acme
    approve: true
    users:
      - email: a@x.com
        password: pw
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.yaml"), []byte("ignored: true\n"), 0o600))

	companies, err := loadCompanies(dir)
	require.NoError(t, err)

	require.Len(t, companies, 1)
	assert.Equal(t, "c1", companies[0].CompanyID)
	assert.Equal(t, "Acme", companies[0].CompanyName)
	assert.True(t, companies[0].Approve)
	assert.Equal(t, []UserData{{Email: "a@x.com", Password: "pw"}}, companies[0].Users)
}

func TestLoadCompaniesBundledData(t *testing.T) {
	companies, err := loadCompanies("data")
	require.NoError(t, err)
	assert.NotEmpty(t, companies)
}

func TestSeedCompanies(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	ctrl := gomock.NewController(t)
	registration := mocks.NewMockRegistrationServiceInterface(ctrl)
	approval := mocks.NewMockApprovalServiceInterface(ctrl)

	lookup := regexp.QuoteMeta(`SELECT * FROM "users" WHERE company_id = $1 AND email = $2`)
	// a@x.com is already there, b@x.com is new
	mock.ExpectQuery(lookup).
		WithArgs("c1", "a@x.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "email"}).AddRow(1, "c1", "a@x.com"))
	mock.ExpectQuery(lookup).
		WithArgs("c1", "b@x.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	registration.EXPECT().
		Register(gomock.Any(), &service.RegisterRequest{CompanyID: "c1", CompanyName: "Acme", Email: "b@x.com", Password: "pw"}).
		Return(&service.RegisterResponse{UserID: 2, Role: models.UserRoleStaff, Status: models.UserStatusPending}, nil)
	approval.EXPECT().
		Approve(gomock.Any(), uint(2), "").
		Return(&service.UserResponse{ID: 2, Status: models.UserStatusActive}, nil)

	stats, err := seedCompanies(context.Background(), db, registration, approval, []CompanyData{{
		CompanyID:   "c1",
		CompanyName: "Acme",
		Approve:     true,
		Users:       []UserData{{Email: "a@x.com", Password: "pw"}, {Email: "b@x.com", Password: "pw"}},
	}})

	require.NoError(t, err)
	assert.Equal(t, seedStats{registered: 1, skipped: 1, approved: 1}, stats)
}
