package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role names carried in the identity record and the JWT role claim.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// IdentityUser is the credential record. It is linked to a UserProfile only by
// the normalized email, not a foreign key.
type IdentityUser struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Role         string    `json:"role" gorm:"type:varchar(20)"`
	CreatedDate  time.Time `json:"createdDate"`
}

// NewIdentityUser creates a credential record with the email normalized for
// lookup (trimmed, lowercased).
func NewIdentityUser(email, passwordHash, role string) *IdentityUser {
	return &IdentityUser{
		ID:           uuid.New().String(),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedDate:  time.Now().UTC(),
	}
}

// NormalizeEmail is the canonical form used as the identity/profile join key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
