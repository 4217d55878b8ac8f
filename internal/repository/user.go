package repository

import (
	"context"
	"iter"

	"saas-signup-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByCompany counts the users registered under a company
func (r *UserRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("company_id = ?", companyID).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Approve sets the user's status to active whatever it was before and returns
// the updated row. gorm.ErrRecordNotFound is returned when no user has the id.
func (r *UserRepository) Approve(ctx context.Context, id uint) (*models.User, error) {
	var updated []models.User
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", models.UserStatusActive)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &updated[0], nil
}

// IteratePending yields the pending users of a company ordered by id.
// Rows are streamed from the database; every range over the returned sequence
// runs the query again. Iteration stops after the first error is yielded.
func (r *UserRepository) IteratePending(ctx context.Context, companyID string) iter.Seq2[models.User, error] {
	return func(yield func(models.User, error) bool) {
		rows, err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("company_id = ? AND status = ?", companyID, models.UserStatusPending).
			Order("id ASC").
			Rows()
		if err != nil {
			yield(models.User{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err := r.db.ScanRows(rows, &user); err != nil {
				yield(models.User{}, err)
				return
			}
			if !yield(user, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.User{}, err)
		}
	}
}
