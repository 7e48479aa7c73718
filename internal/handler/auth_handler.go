package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/middleware"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

const RefreshCookieName = "refresh_token"

type AuthHandler struct {
	authService  *service.AuthService
	validator    *utils.Validator
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		validator:    validator,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return h.register(c, false)
}

func (h *AuthHandler) RegisterSuperAdmin(c *fiber.Ctx) error {
	return h.register(c, true)
}

func (h *AuthHandler) register(c *fiber.Ctx, admin bool) error {
	var req models.RegisterRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	pair, err := h.authService.Register(c.UserContext(), req, admin)
	if err != nil {
		return httpError(err)
	}
	return h.signIn(c, pair)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	pair, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return h.signIn(c, pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(RefreshCookieName)
	if refreshToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token missing")
	}

	access, err := h.authService.Refresh(c.UserContext(), refreshToken)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(models.TokenResponse{
		AccessToken: access,
		TokenType:   models.TokenTypeBearer,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.refreshCookie("", time.Unix(0, 0), 0))
	return c.JSON(models.MessageResponse{Message: "Successfully logged out"})
}

// Me returns the profile of the user loaded by the auth middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c).Profile())
}

func (h *AuthHandler) signIn(c *fiber.Ctx, pair *models.TokenPair) error {
	c.Cookie(h.refreshCookie(pair.RefreshToken, time.Time{}, h.authService.RefreshTTLSeconds()))
	return c.JSON(models.TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   models.TokenTypeBearer,
	})
}

func (h *AuthHandler) refreshCookie(value string, expires time.Time, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   h.cookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
