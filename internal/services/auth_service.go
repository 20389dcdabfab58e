package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/commands"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// Messages returned by the identity operations.
const (
	MsgRegisterSuccess    = "Register user success"
	MsgEmailRegistered    = "This email has been registered"
	MsgEmailNotRegistered = "This email has not been registered"
	MsgIncorrectLogin     = "Email or password is incorrect"
	MsgInternalError      = "An error occurred and try again"
)

// errRollback aborts a unit of work after a business error has already been
// recorded on the result.
var errRollback = errors.New("rollback")

// AuthService handles registration, login, and token validation.
type AuthService struct {
	uow           repositories.UnitOfWork
	repos         repositories.Repositories
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService. Tokens are valid for 2 hours and
// are not renewable.
func NewAuthService(uow repositories.UnitOfWork, repos repositories.Repositories, jwtSecret string) *AuthService {
	return &AuthService{
		uow:           uow,
		repos:         repos,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 2 * time.Hour,
	}
}

// Register validates the profile fields, checks the email is unregistered,
// enforces the password policy, then creates the identity record and the
// profile row in one transaction.
func (s *AuthService) Register(ctx context.Context, cmd commands.RegisterCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	profile := models.NewUserProfile(cmd.FullName, cmd.Email, cmd.PhoneNumber, cmd.DateOfBirth)
	if addValidationErrors(result, profile) {
		return result
	}

	if _, err := s.repos.IdentityUsers().GetByEmail(ctx, cmd.Email); err == nil {
		result.AddError(models.ErrNotFound, MsgEmailRegistered)
		return result
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return internalError(result, err)
	}

	if msgs := passwordPolicy(cmd.Password); len(msgs) > 0 {
		for _, msg := range msgs {
			result.AddError(models.ErrBadRequest, msg)
		}
		return result
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(result, err)
	}

	err = s.uow.Do(ctx, func(tx repositories.Repositories) error {
		identity := models.NewIdentityUser(cmd.Email, string(hash), models.RoleUser)
		if err := tx.IdentityUsers().Create(ctx, identity); err != nil {
			return err
		}
		return tx.UserProfiles().Create(ctx, profile)
	})
	if err != nil {
		return internalError(result, err)
	}

	result.Data = MsgRegisterSuccess
	return result
}

// Login checks the credentials and returns a signed bearer token. A missing
// email and a wrong password produce the same generic error.
func (s *AuthService) Login(ctx context.Context, cmd commands.LoginCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	if addValidationErrors(result, cmd) {
		return result
	}

	identity, err := s.repos.IdentityUsers().GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			result.AddError(models.ErrBadRequest, MsgIncorrectLogin)
			return result
		}
		return internalError(result, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(cmd.Password)) != nil {
		result.AddError(models.ErrBadRequest, MsgIncorrectLogin)
		return result
	}

	profile, err := s.repos.UserProfiles().GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			result.AddError(models.ErrBadRequest, MsgEmailNotRegistered)
			return result
		}
		return internalError(result, err)
	}

	token, err := s.generateToken(profile, identity.Role)
	if err != nil {
		return internalError(result, err)
	}

	result.Data = token
	return result
}

// generateToken signs an HS256 token embedding the profile claims and role.
func (s *AuthService) generateToken(profile *models.UserProfile, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":             profile.Email,
		"jti":             uuid.New().String(),
		"email":           profile.Email,
		"full_name":       profile.FullName,
		"user_profile_id": profile.ID,
		"role":            role,
		"iat":             now.Unix(),
		"exp":             now.Add(s.tokenDuration).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// internalError records a generic server error; the raw detail stays in the
// server log only.
func internalError[T any](result *models.OperationResult[T], err error) *models.OperationResult[T] {
	log.Printf("internal error: %v", err)
	result.AddError(models.ErrInternalServerError, MsgInternalError)
	return result
}
