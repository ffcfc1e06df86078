package repository

import (
	"context"

	"careervector/internal/model"
)

// PrincipalRepository is the variant-agnostic slice of persistence the
// account lifecycle needs. Both the student and recruiter repositories
// implement it; lookups miss with gorm.ErrRecordNotFound.
type PrincipalRepository interface {
	FindByEmail(ctx context.Context, email string) (model.Principal, error)
	// FindByIdentifier resolves a login identifier against email or username
	// in a single disjunctive lookup.
	FindByIdentifier(ctx context.Context, identifier string) (model.Principal, error)
	// UpdatePassword overwrites the stored hash in place, leaving every other
	// field untouched.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
