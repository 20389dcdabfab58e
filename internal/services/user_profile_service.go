package services

import (
	"context"
	"errors"
	"fmt"

	"shopapi/internal/commands"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// Messages returned by the profile operations.
const (
	MsgUpdateAccountSuccess = "Update account success"
	MsgRemoveAccountSuccess = "Remove account success"
)

// MsgUserProfileNotFound formats the not-found message for a profile id.
func MsgUserProfileNotFound(id string) string {
	return fmt.Sprintf("No find UserProfile with ID %s", id)
}

// MsgUserProfileByEmailNotFound formats the not-found message for the
// identity record matched by email.
func MsgUserProfileByEmailNotFound(email string) string {
	return fmt.Sprintf("No find UserProfile with email %s", email)
}

// UserProfileService handles the profile queries and mutations.
type UserProfileService struct {
	uow   repositories.UnitOfWork
	repos repositories.Repositories
}

// NewUserProfileService creates a new UserProfileService.
func NewUserProfileService(uow repositories.UnitOfWork, repos repositories.Repositories) *UserProfileService {
	return &UserProfileService{uow: uow, repos: repos}
}

// GetAllUserProfiles retrieves every profile.
func (s *UserProfileService) GetAllUserProfiles(ctx context.Context, _ commands.GetAllUserProfilesQuery) *models.OperationResult[[]models.UserProfile] {
	result := models.NewOperationResult[[]models.UserProfile]()

	profiles, err := s.repos.UserProfiles().GetAll(ctx)
	if err != nil {
		return internalError(result, err)
	}

	result.Data = profiles
	return result
}

// GetUserProfileByID retrieves one profile.
func (s *UserProfileService) GetUserProfileByID(ctx context.Context, query commands.GetUserProfileByIDQuery) *models.OperationResult[models.UserProfile] {
	result := models.NewOperationResult[models.UserProfile]()

	profile, err := s.repos.UserProfiles().GetByID(ctx, query.UserProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			result.AddError(models.ErrNotFound, MsgUserProfileNotFound(query.UserProfileID))
			return result
		}
		return internalError(result, err)
	}

	result.Data = *profile
	return result
}

// UpdateUserProfile validates the command, confirms the profile exists, and
// applies the update. Email is never touched.
func (s *UserProfileService) UpdateUserProfile(ctx context.Context, cmd commands.UpdateUserProfileCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	if addValidationErrors(result, cmd) {
		return result
	}

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		profile, err := tx.UserProfiles().GetByID(ctx, cmd.UserProfileID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result.AddError(models.ErrNotFound, MsgUserProfileNotFound(cmd.UserProfileID))
				return errRollback
			}
			return err
		}

		profile.Update(cmd.FullName, cmd.PhoneNumber, cmd.DateOfBirth)
		return tx.UserProfiles().Update(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result
		}
		return internalError(result, err)
	}

	result.Data = MsgUpdateAccountSuccess
	return result
}

// RemoveAccount deletes the profile row and the identity record matched by
// normalized email, in one transaction. A missing identity record is a
// NotFound, never a silent success.
func (s *UserProfileService) RemoveAccount(ctx context.Context, cmd commands.RemoveAccountCommand) *models.OperationResult[string] {
	result := models.NewOperationResult[string]()

	err := s.uow.Do(ctx, func(tx repositories.Repositories) error {
		profile, err := tx.UserProfiles().GetByID(ctx, cmd.UserProfileID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result.AddError(models.ErrNotFound, MsgUserProfileNotFound(cmd.UserProfileID))
				return errRollback
			}
			return err
		}

		identity, err := tx.IdentityUsers().GetByEmail(ctx, profile.Email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				result.AddError(models.ErrNotFound, MsgUserProfileByEmailNotFound(profile.Email))
				return errRollback
			}
			return err
		}

		if err := tx.IdentityUsers().Delete(ctx, identity.ID); err != nil {
			return err
		}
		return tx.UserProfiles().Delete(ctx, profile.ID)
	})
	if err != nil {
		if errors.Is(err, errRollback) {
			return result
		}
		return internalError(result, err)
	}

	result.Data = MsgRemoveAccountSuccess
	return result
}
