package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi/internal/commands"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
)

func validUpdateProfileCommand(id string) commands.UpdateUserProfileCommand {
	return commands.UpdateUserProfileCommand{
		UserProfileID: id,
		FullName:      "Jane Smith",
		PhoneNumber:   "0123456789",
		DateOfBirth:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserProfileService_GetUserProfileByID(t *testing.T) {
	ctx := context.Background()
	repos := newMockRepos()
	service := services.NewUserProfileService(repos.uow(), repos)

	profile := &models.UserProfile{ID: "u-1", FullName: "Jane Doe", Email: "jane@example.com"}
	repos.profiles.On("GetByID", mock.Anything, "u-1").Return(profile, nil).Once()

	result := service.GetUserProfileByID(ctx, commands.GetUserProfileByIDQuery{UserProfileID: "u-1"})
	require.False(t, result.IsError)
	assert.Equal(t, *profile, result.Data)

	repos.profiles.On("GetByID", mock.Anything, "missing").
		Return(nil, notFoundErr("user profile")).Once()

	result = service.GetUserProfileByID(ctx, commands.GetUserProfileByIDQuery{UserProfileID: "missing"})
	require.True(t, result.IsError)
	assert.Equal(t, models.ErrNotFound, result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Message, "missing")
}

func TestUserProfileService_UpdateUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps the email untouched", func(t *testing.T) {
		repos := newMockRepos()
		service := services.NewUserProfileService(repos.uow(), repos)

		existing := &models.UserProfile{
			ID:       "u-1",
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		}
		repos.profiles.On("GetByID", mock.Anything, "u-1").Return(existing, nil).Once()

		var updated *models.UserProfile
		repos.profiles.On("Update", mock.Anything, mock.AnythingOfType("*models.UserProfile")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*models.UserProfile)
			}).Return(nil).Once()

		result := service.UpdateUserProfile(ctx, validUpdateProfileCommand("u-1"))

		require.False(t, result.IsError)
		assert.Equal(t, services.MsgUpdateAccountSuccess, result.Data)
		require.NotNil(t, updated)
		assert.Equal(t, "Jane Smith", updated.FullName)
		assert.Equal(t, "jane@example.com", updated.Email)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		repos := newMockRepos()
		service := services.NewUserProfileService(repos.uow(), repos)

		cmd := validUpdateProfileCommand("u-1")
		cmd.FullName = ""
		cmd.PhoneNumber = "123"

		result := service.UpdateUserProfile(ctx, cmd)

		require.True(t, result.IsError)
		messages := errorMessages(result.Errors)
		assert.Contains(t, messages, "Full name cannot be empty")
		assert.Contains(t, messages, "Phone number must be at least 10 characters long")
		repos.profiles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repos := newMockRepos()
		service := services.NewUserProfileService(repos.uow(), repos)

		repos.profiles.On("GetByID", mock.Anything, "missing").
			Return(nil, notFoundErr("user profile")).Once()

		result := service.UpdateUserProfile(ctx, validUpdateProfileCommand("missing"))

		require.True(t, result.IsError)
		assert.Equal(t, models.ErrNotFound, result.Errors[0].Code)
		repos.profiles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserProfileService_RemoveAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("removes profile and identity", func(t *testing.T) {
		memory := repositories.NewMemoryRepositories()
		service := services.NewUserProfileService(repositories.NewMemoryUnitOfWork(memory), memory)

		profile := models.NewUserProfile("Jane Doe", "jane@example.com", "0123456789",
			time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))
		identity := models.NewIdentityUser("jane@example.com", "hash", models.RoleUser)
		require.NoError(t, memory.UserProfiles().Create(ctx, profile))
		require.NoError(t, memory.IdentityUsers().Create(ctx, identity))

		result := service.RemoveAccount(ctx, commands.RemoveAccountCommand{UserProfileID: profile.ID})

		require.False(t, result.IsError)
		assert.Equal(t, services.MsgRemoveAccountSuccess, result.Data)

		_, err := memory.UserProfiles().GetByID(ctx, profile.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		_, err = memory.IdentityUsers().GetByEmail(ctx, "jane@example.com")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("missing identity record is a not found", func(t *testing.T) {
		memory := repositories.NewMemoryRepositories()
		service := services.NewUserProfileService(repositories.NewMemoryUnitOfWork(memory), memory)

		profile := models.NewUserProfile("Jane Doe", "jane@example.com", "0123456789",
			time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, memory.UserProfiles().Create(ctx, profile))

		result := service.RemoveAccount(ctx, commands.RemoveAccountCommand{UserProfileID: profile.ID})

		require.True(t, result.IsError)
		assert.Equal(t, models.ErrNotFound, result.Errors[0].Code)
		assert.Contains(t, result.Errors[0].Message, "jane@example.com")
	})

	t.Run("missing profile", func(t *testing.T) {
		repos := newMockRepos()
		service := services.NewUserProfileService(repos.uow(), repos)

		repos.profiles.On("GetByID", mock.Anything, "missing").
			Return(nil, notFoundErr("user profile")).Once()

		result := service.RemoveAccount(ctx, commands.RemoveAccountCommand{UserProfileID: "missing"})

		require.True(t, result.IsError)
		assert.Equal(t, models.ErrNotFound, result.Errors[0].Code)
		repos.identity.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
