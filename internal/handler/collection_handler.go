package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

type CollectionHandler struct {
	collectionService *service.CollectionService
	validator         *utils.Validator
}

func NewCollectionHandler(collectionService *service.CollectionService, validator *utils.Validator) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var req models.CollectionRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	collection, err := h.collectionService.CreateCollection(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(collection)
}

// ListCollections accepts an optional event_id filter.
func (h *CollectionHandler) ListCollections(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return err
	}
	eventID, err := optionalID(c, "event_id")
	if err != nil {
		return err
	}

	collections, err := h.collectionService.ListCollections(c.UserContext(), eventID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(collections)
}

func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	collection, err := h.collectionService.GetCollection(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(collection)
}

func (h *CollectionHandler) UpdateCollection(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCollectionRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	collection, err := h.collectionService.UpdateCollection(c.UserContext(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(collection)
}

func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	collection, err := h.collectionService.DeleteCollection(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(collection)
}
