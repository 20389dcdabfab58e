package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopapi/internal/models"
)

// GORMUserProfileRepository is a GORM implementation of UserProfileRepository.
type GORMUserProfileRepository struct {
	db *gorm.DB
}

// NewGORMUserProfileRepository creates a new instance of GORMUserProfileRepository.
func NewGORMUserProfileRepository(db *gorm.DB) *GORMUserProfileRepository {
	return &GORMUserProfileRepository{db: db}
}

// GetAll retrieves all user profiles from the database.
func (r *GORMUserProfileRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all user profiles: %w", err)
	}
	return profiles, nil
}

// GetByID retrieves a user profile by its ID from the database.
func (r *GORMUserProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user profile by ID %s: %w", id, err)
	}
	return &profile, nil
}

// GetByEmail retrieves a user profile by the normalized email join key.
func (r *GORMUserProfileRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	normalized := models.NormalizeEmail(email)
	if err := r.db.WithContext(ctx).First(&profile, "lower(email) = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user profile with email %s: %w", normalized, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user profile by email %s: %w", normalized, err)
	}
	return &profile, nil
}

// Create creates a new user profile in the database.
func (r *GORMUserProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create user profile: %w", err)
	}
	return nil
}

// Update updates an existing user profile in the database.
func (r *GORMUserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	res := r.db.WithContext(ctx).Save(profile)
	if res.Error != nil {
		return fmt.Errorf("failed to update user profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user profile %s: %w", profile.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a user profile by its ID from the database.
func (r *GORMUserProfileRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.UserProfile{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user profile %s: %w", id, ErrNotFound)
	}
	return nil
}

// GORMIdentityUserRepository is a GORM implementation of IdentityUserRepository.
type GORMIdentityUserRepository struct {
	db *gorm.DB
}

// NewGORMIdentityUserRepository creates a new instance of GORMIdentityUserRepository.
func NewGORMIdentityUserRepository(db *gorm.DB) *GORMIdentityUserRepository {
	return &GORMIdentityUserRepository{db: db}
}

// GetByEmail retrieves an identity user by the normalized email.
func (r *GORMIdentityUserRepository) GetByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	var user models.IdentityUser
	normalized := models.NormalizeEmail(email)
	if err := r.db.WithContext(ctx).First(&user, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("identity user with email %s: %w", normalized, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get identity user by email %s: %w", normalized, err)
	}
	return &user, nil
}

// Create creates a new identity user in the database.
func (r *GORMIdentityUserRepository) Create(ctx context.Context, user *models.IdentityUser) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create identity user: %w", err)
	}
	return nil
}

// Delete deletes an identity user by its ID from the database.
func (r *GORMIdentityUserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.IdentityUser{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete identity user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("identity user %s: %w", id, ErrNotFound)
	}
	return nil
}
