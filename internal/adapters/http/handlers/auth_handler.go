package handlers

import (
	"strings"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/http/middleware"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/services"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/password"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// SignUp handles member registration
// @Summary Register new member
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignUpInput true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req services.SignUpInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if !password.Validate(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	result, err := h.authService.SignUp(c.Context(), &req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Created(c, "Member registered successfully", result)
}

// SignIn handles member login
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignInInput true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req services.SignInInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.SignIn(c.Context(), &req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "Signed in successfully", result)
}

// Refresh exchanges the refresh token in the Authorization header for a
// fresh token pair
// @Summary Refresh tokens
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)

	res := h.tokenService.Provider().Validate(authHeader)
	if !res.OK() {
		return response.Unauthorized(c, "Invalid refresh token")
	}
	presented := strings.TrimSpace(authHeader[len("Bearer "):])

	pair, err := h.authService.Refresh(c.Context(), presented)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "Token refreshed successfully", pair)
}

// SignOut ends the authenticated member's session
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	username := middleware.Username(c)

	if err := h.authService.SignOut(c.Context(), username); err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "Signed out successfully", nil)
}

// Me returns the authenticated member's profile
// @Summary Current member
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username := middleware.Username(c)

	member, err := h.authService.GetMember(c.Context(), username)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", member.ToResponse())
}
