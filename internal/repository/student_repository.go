package repository

import (
	"context"

	"gorm.io/gorm"

	"careervector/internal/model"
)

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	PrincipalRepository
	Create(ctx context.Context, student *model.Student) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository builds a GORM-backed repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create inserts a new student row. Uniqueness conflicts surface as
// gorm.ErrDuplicatedKey.
func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (model.Principal, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByIdentifier(ctx context.Context, identifier string) (model.Principal, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Where("email = ? OR user_name = ?", identifier, identifier).
		First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&model.Student{}).
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
