package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/cache"
	"shopapi/internal/commands"
	"shopapi/internal/middleware"
	"shopapi/internal/models"
	"shopapi/internal/services"
)

const userProfilesController = "UserProfiles"

// UserProfileHandler handles HTTP requests for profiles: admin views over all
// profiles plus the authenticated user's own account.
type UserProfileHandler struct {
	userProfileService *services.UserProfileService
	cacheService       cache.ResponseCacheService
	cacheConfig        middleware.CacheConfig
}

// NewUserProfileHandler creates a new UserProfileHandler.
func NewUserProfileHandler(userProfileService *services.UserProfileService, cacheService cache.ResponseCacheService, cacheConfig middleware.CacheConfig) *UserProfileHandler {
	return &UserProfileHandler{
		userProfileService: userProfileService,
		cacheService:       cacheService,
		cacheConfig:        cacheConfig,
	}
}

// RegisterRoutes registers the profile routes. The router is expected to
// already require authentication; admin routes add the role filter on top.
func (h *UserProfileHandler) RegisterRoutes(router fiber.Router) {
	profiles := router.Group("/" + userProfilesController)

	admin := middleware.RequireRole(models.RoleAdmin)
	profiles.Get("/GetAllUserProfiles", admin, middleware.CacheResponse(h.cacheConfig, h.cacheService), h.HandleGetAllUserProfiles)
	profiles.Get("/GetUserProfileById/:userProfileId", admin, middleware.ValidateUUID("userProfileId"), h.HandleGetUserProfileByID)
	profiles.Put("/UpdateUserProfileById/:userProfileId", admin, middleware.ValidateUUID("userProfileId"), h.HandleUpdateUserProfileByID)
	profiles.Delete("/RemoveUserProfileById/:userProfileId", admin, middleware.ValidateUUID("userProfileId"), h.HandleRemoveUserProfileByID)

	profiles.Get("/GetInformationOfUserProfile", h.HandleGetOwnProfile)
	profiles.Put("/UpdateInformationOfUserProfile", h.HandleUpdateOwnProfile)
	profiles.Delete("/RemoveAccount", h.HandleRemoveOwnAccount)
}

// HandleGetAllUserProfiles returns every profile. Admin only, cached.
func (h *UserProfileHandler) HandleGetAllUserProfiles(c *fiber.Ctx) error {
	result := h.userProfileService.GetAllUserProfiles(c.UserContext(), commands.GetAllUserProfilesQuery{})
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleGetUserProfileByID returns one profile. Admin only.
func (h *UserProfileHandler) HandleGetUserProfileByID(c *fiber.Ctx) error {
	query := commands.GetUserProfileByIDQuery{UserProfileID: c.Params("userProfileId")}

	result := h.userProfileService.GetUserProfileByID(c.UserContext(), query)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleUpdateUserProfileByID updates any profile by id. Admin only.
func (h *UserProfileHandler) HandleUpdateUserProfileByID(c *fiber.Ctx) error {
	return h.updateProfile(c, c.Params("userProfileId"))
}

// HandleRemoveUserProfileByID removes any account by profile id. Admin only.
func (h *UserProfileHandler) HandleRemoveUserProfileByID(c *fiber.Ctx) error {
	return h.removeAccount(c, c.Params("userProfileId"))
}

// HandleGetOwnProfile returns the authenticated user's own profile.
func (h *UserProfileHandler) HandleGetOwnProfile(c *fiber.Ctx) error {
	query := commands.GetUserProfileByIDQuery{UserProfileID: userProfileID(c)}

	result := h.userProfileService.GetUserProfileByID(c.UserContext(), query)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleUpdateOwnProfile updates the authenticated user's own profile.
func (h *UserProfileHandler) HandleUpdateOwnProfile(c *fiber.Ctx) error {
	return h.updateProfile(c, userProfileID(c))
}

// HandleRemoveOwnAccount removes the authenticated user's own account.
func (h *UserProfileHandler) HandleRemoveOwnAccount(c *fiber.Ctx) error {
	return h.removeAccount(c, userProfileID(c))
}

func (h *UserProfileHandler) updateProfile(c *fiber.Ctx, profileID string) error {
	var cmd commands.UpdateUserProfileCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}
	cmd.UserProfileID = profileID

	result := h.userProfileService.UpdateUserProfile(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, userProfilesController, "GetAllUserProfiles")
	return c.JSON(result)
}

func (h *UserProfileHandler) removeAccount(c *fiber.Ctx, profileID string) error {
	cmd := commands.RemoveAccountCommand{UserProfileID: profileID}

	result := h.userProfileService.RemoveAccount(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}

	invalidateCache(c.UserContext(), h.cacheService, userProfilesController, "GetAllUserProfiles")
	return c.JSON(result)
}
