package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"saas-signup-backend/internal/database/models"
	"saas-signup-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "created_at", "updated_at", "company_id", "email", "password", "role", "status"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	user := &models.User{
		CompanyID: "c1",
		Email:     "a@x.com",
		Password:  "hash",
		Role:      models.UserRoleAdmin,
		Status:    models.UserStatusActive,
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, uint(5), user.ID)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByID(context.Background(), 99)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_CountByCompany(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE company_id = \$1`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.CountByCompany(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestUserRepository_CountByCompanyError(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("db down"))

	total, err := repo.CountByCompany(context.Background(), "c1")

	assert.EqualError(t, err, "db down")
	assert.Zero(t, total)
}

func TestUserRepository_Approve(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE "users" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, now, now, "c1", "b@x.com", "hash", "staff", "active"))

	user, err := repo.Approve(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "b@x.com", user.Email)
	assert.Equal(t, models.UserStatusActive, user.Status)
}

func TestUserRepository_ApproveNotFound(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`UPDATE "users" SET .* WHERE id = \$3 RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.Approve(context.Background(), 404)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_IteratePending(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	pendingQuery := `SELECT \* FROM "users" WHERE company_id = \$1 AND status = \$2 ORDER BY id ASC`

	// the sequence is ranged twice below; each range re-runs the query
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(pendingQuery).
			WithArgs("c1", "pending").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(2, now, now, "c1", "b@x.com", "hash", "staff", "pending").
				AddRow(3, now, now, "c1", "c@x.com", "hash", "staff", "pending"))
	}

	seq := repo.IteratePending(context.Background(), "c1")

	for range 2 {
		var emails []string
		for user, err := range seq {
			require.NoError(t, err)
			emails = append(emails, user.Email)
		}
		assert.Equal(t, []string{"b@x.com", "c@x.com"}, emails)
	}
}

func TestUserRepository_IteratePendingStopsEarly(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE company_id = \$1 AND status = \$2`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, now, now, "c1", "b@x.com", "hash", "staff", "pending").
			AddRow(3, now, now, "c1", "c@x.com", "hash", "staff", "pending"))

	count := 0
	for _, err := range repo.IteratePending(context.Background(), "c1") {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestUserRepository_IteratePendingQueryError(t *testing.T) {
	db, mock := testutils.NewMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(errors.New("db down"))

	var errs []error
	for _, err := range repo.IteratePending(context.Background(), "c1") {
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "db down")
}
