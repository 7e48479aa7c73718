package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/qrcode"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	event, err := h.eventService.CreateEvent(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(event)
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return err
	}

	events, err := h.eventService.ListEvents(c.UserContext(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(events)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.GetEvent(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(event)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateEventRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	event, err := h.eventService.UpdateEvent(c.UserContext(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.DeleteEvent(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(event)
}

// QRCode serves a PNG QR code for the event's guest gallery.
func (h *EventHandler) QRCode(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	size := qrcode.DefaultSize
	if raw := c.Query("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return badRequest("size must be an integer")
		}
	}

	png, err := h.eventService.QRCode(c.UserContext(), id, size)
	if err != nil {
		return httpError(err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
