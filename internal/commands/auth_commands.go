// Package commands holds the intent objects dispatched to the services. Each
// command or query is an immutable description of one requested operation.
package commands

import "time"

// RegisterCommand describes a new-account request.
type RegisterCommand struct {
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Password    string    `json:"password"`
}

// LoginCommand describes a credential check that yields a bearer token.
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
