package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHTTPErrorStatuses(t *testing.T) {
	cases := []struct {
		kind   error
		status int
	}{
		{service.ErrNotFound, fiber.StatusNotFound},
		{service.ErrConflict, fiber.StatusBadRequest},
		{service.ErrValidation, fiber.StatusBadRequest},
		{service.ErrInvalidCredentials, fiber.StatusBadRequest},
		{service.ErrInactiveUser, fiber.StatusBadRequest},
		{service.ErrInvalidToken, fiber.StatusForbidden},
		{service.ErrForbidden, fiber.StatusForbidden},
		{service.ErrStorageDisabled, fiber.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		err := httpError(fmt.Errorf("wrapped: %w", &service.Error{Kind: tc.kind, Detail: "boom"}))
		var fe *fiber.Error
		require.True(t, errors.As(err, &fe), tc.kind.Error())
		assert.Equal(t, tc.status, fe.Code, tc.kind.Error())
	}

	plain := errors.New("disk on fire")
	assert.Same(t, plain, httpError(plain))
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("secret details") })
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "Event not found") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/gone", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail":"Event not found"}`, string(body))
}

func TestParsePage(t *testing.T) {
	v := utils.NewValidator()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	var got models.Page
	app.Get("/", func(c *fiber.Ctx) error {
		page, err := parsePage(c, v)
		if err != nil {
			return err
		}
		got = page
		return c.SendStatus(fiber.StatusOK)
	})

	status := func(query string) int {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+query, nil), -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, status(""))
	assert.Equal(t, models.DefaultPage(), got)

	assert.Equal(t, http.StatusOK, status("?skip=20&limit=5"))
	assert.Equal(t, models.Page{Skip: 20, Limit: 5}, got)

	assert.Equal(t, http.StatusBadRequest, status("?skip=-1"))
	assert.Equal(t, http.StatusBadRequest, status("?limit=1001"))
	assert.Equal(t, http.StatusBadRequest, status("?limit=ten"))
}
