package repository

import (
	"context"

	"gorm.io/gorm"

	"careervector/internal/model"
)

// RecruiterRepository defines recruiter persistence operations.
type RecruiterRepository interface {
	PrincipalRepository
	Create(ctx context.Context, recruiter *model.Recruiter) error
}

type recruiterRepository struct {
	db *gorm.DB
}

// NewRecruiterRepository builds a GORM-backed repository.
func NewRecruiterRepository(db *gorm.DB) RecruiterRepository {
	return &recruiterRepository{db: db}
}

// Create inserts a new recruiter row. Uniqueness conflicts surface as
// gorm.ErrDuplicatedKey.
func (r *recruiterRepository) Create(ctx context.Context, recruiter *model.Recruiter) error {
	return r.db.WithContext(ctx).Create(recruiter).Error
}

func (r *recruiterRepository) FindByEmail(ctx context.Context, email string) (model.Principal, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&recruiter).Error; err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *recruiterRepository) FindByIdentifier(ctx context.Context, identifier string) (model.Principal, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&recruiter).Error; err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *recruiterRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&model.Recruiter{}).
		Where("email = ?", email).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
