package repositories

import (
	"context"

	"shopapi/internal/models"
)

// UserProfileRepository defines the interface for profile data access. Email,
// not id, is the join key to the identity record, hence GetByEmail.
type UserProfileRepository interface {
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, profile *models.UserProfile) error
	Delete(ctx context.Context, id string) error
}

// IdentityUserRepository defines the interface for credential data access.
type IdentityUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.IdentityUser, error)
	Create(ctx context.Context, user *models.IdentityUser) error
	Delete(ctx context.Context, id string) error
}
