package commands

import "time"

// UpdateUserProfileCommand describes a profile update. Email is not part of
// the command: it is immutable after registration.
type UpdateUserProfileCommand struct {
	UserProfileID string    `json:"-"`
	FullName      string    `json:"fullName" validate:"required,min=1,max=50"`
	PhoneNumber   string    `json:"phoneNumber" validate:"required,min=10,max=20"`
	DateOfBirth   time.Time `json:"dateOfBirth" validate:"required"`
}

// RemoveAccountCommand removes a profile together with its identity record.
type RemoveAccountCommand struct {
	UserProfileID string `json:"-"`
}

// GetAllUserProfilesQuery lists every profile.
type GetAllUserProfilesQuery struct{}

// GetUserProfileByIDQuery fetches one profile.
type GetUserProfileByIDQuery struct {
	UserProfileID string
}
