package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile represents an identity-independent profile record. The email is
// immutable after creation; it is the join key to the identity record.
type UserProfile struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FullName    string    `json:"fullName" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=1,max=255,email"`
	PhoneNumber string    `json:"phoneNumber" gorm:"type:varchar(20)" validate:"required,min=10,max=20"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
}

// NewUserProfile creates a profile with a fresh ID.
func NewUserProfile(fullName, email, phoneNumber string, dateOfBirth time.Time) *UserProfile {
	return &UserProfile{
		ID:          uuid.New().String(),
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phoneNumber,
		DateOfBirth: dateOfBirth,
	}
}

// Update replaces the mutable fields. Email stays as set at creation.
func (u *UserProfile) Update(fullName, phoneNumber string, dateOfBirth time.Time) {
	u.FullName = fullName
	u.PhoneNumber = phoneNumber
	u.DateOfBirth = dateOfBirth
}
