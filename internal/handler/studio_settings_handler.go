package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/middleware"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

// StudioSettingsHandler expects middleware.LoadUser ahead of it.
type StudioSettingsHandler struct {
	settingsService *service.StudioSettingsService
	validator       *utils.Validator
}

func NewStudioSettingsHandler(settingsService *service.StudioSettingsService, validator *utils.Validator) *StudioSettingsHandler {
	return &StudioSettingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *StudioSettingsHandler) CreateSettings(c *fiber.Ctx) error {
	var req models.StudioSettingsRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.CreateSettings(c.UserContext(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *StudioSettingsHandler) ListSettings(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return err
	}

	settings, err := h.settingsService.ListSettings(c.UserContext(), middleware.CurrentUser(c), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *StudioSettingsHandler) CurrentSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.CurrentSettings(c.UserContext(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *StudioSettingsHandler) GetSettings(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	settings, err := h.settingsService.GetSettings(c.UserContext(), middleware.CurrentUser(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *StudioSettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateStudioSettingsRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.UpdateSettings(c.UserContext(), middleware.CurrentUser(c), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *StudioSettingsHandler) DeleteSettings(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	settings, err := h.settingsService.DeleteSettings(c.UserContext(), middleware.CurrentUser(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}
