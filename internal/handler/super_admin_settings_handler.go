package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

type SuperAdminSettingsHandler struct {
	settingsService *service.SuperAdminSettingsService
	validator       *utils.Validator
}

func NewSuperAdminSettingsHandler(settingsService *service.SuperAdminSettingsService, validator *utils.Validator) *SuperAdminSettingsHandler {
	return &SuperAdminSettingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *SuperAdminSettingsHandler) CreateSettings(c *fiber.Ctx) error {
	var req models.SuperAdminSettingsRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.CreateSettings(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *SuperAdminSettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetSettings(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *SuperAdminSettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req models.UpdateSuperAdminSettingsRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	settings, err := h.settingsService.UpdateSettings(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *SuperAdminSettingsHandler) DeleteSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.DeleteSettings(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}

func (h *SuperAdminSettingsHandler) InitializeSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.InitializeSettings(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(settings)
}
