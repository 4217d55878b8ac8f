package service_test

import (
	"context"
	"strings"
	"testing"

	"saas-signup-backend/internal/database/models"
	"saas-signup-backend/internal/mocks"
	"saas-signup-backend/internal/repository"
	"saas-signup-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, "pw", hash)
	assert.NoError(t, h.Compare(hash, "pw"))
	assert.Error(t, h.Compare(hash, "wrong"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("pw")
	require.NoError(t, err)
	second, err := h.Hash("pw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherDefaultCost(t *testing.T) {
	assert.Equal(t, service.DefaultBcryptCost, service.NewBcryptHasher(0).Cost)
}

func TestBcryptHasherInvalidCost(t *testing.T) {
	_, err := service.NewBcryptHasher(bcrypt.MaxCost + 1).Hash("pw")
	assert.ErrorContains(t, err, "hash password")
}

func TestBcryptHasherLongPassword(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("p", service.MaxPasswordBytes+28)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, long))
	assert.NoError(t, h.Compare(hash, long[:service.MaxPasswordBytes]))
	assert.Error(t, h.Compare(hash, long[:service.MaxPasswordBytes-1]))
}

func TestRegisterAcceptsLongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTransactionManagerInterface(ctrl)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	companies := mocks.NewMockCompanyRepositoryInterface(ctrl)

	tx.EXPECT().
		WithinCompanyTx(gomock.Any(), "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(repository.Repositories) error) error {
			return fn(repository.Repositories{Companies: companies, Users: users})
		})
	companies.EXPECT().GetByCompanyID(gomock.Any(), "c1").Return(&models.Company{CompanyID: "c1", Name: "Acme"}, nil)
	users.EXPECT().CountByCompany(gomock.Any(), "c1").Return(int64(0), nil)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewRegistrationService(tx, service.NewBcryptHasher(bcrypt.MinCost), validator.New())
	resp, err := svc.Register(context.Background(), &service.RegisterRequest{
		CompanyID:   "c1",
		CompanyName: "Acme",
		Email:       "a@x.com",
		Password:    strings.Repeat("p", 73),
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, resp.Role)
}
