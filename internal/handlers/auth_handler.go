package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/commands"
	"shopapi/internal/services"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the authentication routes. Both are public.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/Authentications")
	auth.Post("/Register", h.HandleRegister)
	auth.Post("/Login", h.HandleLogin)
}

// HandleRegister handles new account registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var cmd commands.RegisterCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}

	result := h.authService.Register(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}

// HandleLogin handles credential checks and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var cmd commands.LoginCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequestBody(c)
	}

	result := h.authService.Login(c.UserContext(), cmd)
	if result.IsError {
		return handleErrorResponse(c, result.Errors)
	}
	return c.JSON(result)
}
