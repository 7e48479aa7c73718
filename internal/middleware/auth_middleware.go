package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
)

const (
	localUserID = "userID"
	localUser   = "user"
)

// AuthMiddleware accepts requests carrying a valid bearer access token and
// stores the token subject under "userID".
func AuthMiddleware(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		userID, err := auth.Authenticate(token)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}

		c.Locals(localUserID, userID)
		return c.Next()
	}
}

// LoadUser resolves the authenticated user and stores it under "user". It
// must run after AuthMiddleware.
func LoadUser(users *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.CurrentUser(c.UserContext(), UserID(c))
		if err != nil {
			return userError(err)
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

// RequireAdmin is LoadUser restricted to admins.
func RequireAdmin(users *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.RequireAdmin(c.UserContext(), UserID(c))
		if err != nil {
			return userError(err)
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(localUserID).(uint)
	return id
}

func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

func userError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInactiveUser):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}
	return err
}
