package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/utils"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *utils.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

// CreatePhoto records a photo whose event_id comes from the body.
func (h *PhotoHandler) CreatePhoto(c *fiber.Ctx) error {
	var req models.PhotoRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	if req.EventID == 0 {
		return badRequest("event_id is required")
	}
	return h.create(c, req)
}

// CreateEventPhoto records a photo under the event in the path.
func (h *PhotoHandler) CreateEventPhoto(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.PhotoRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}
	req.EventID = eventID
	return h.create(c, req)
}

func (h *PhotoHandler) create(c *fiber.Ctx, req models.PhotoRequest) error {
	photo, err := h.photoService.CreatePhoto(c.UserContext(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photo)
}

// UploadEventPhoto stores a multipart "photo" file for the event in the path.
func (h *PhotoHandler) UploadEventPhoto(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return badRequest("photo file is required")
	}

	contentType := strings.TrimSpace(strings.SplitN(file.Header.Get(fiber.HeaderContentType), ";", 2)[0])
	if !h.validator.IsSupportedImage(contentType) {
		return badRequest("Unsupported image type")
	}

	upload := models.Upload{
		EventID:     eventID,
		Title:       strings.TrimSpace(c.FormValue("title")),
		FileName:    file.Filename,
		ContentType: contentType,
		Size:        file.Size,
	}
	if raw := c.FormValue("collection_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return badRequest("collection_id must be a positive integer")
		}
		collectionID := uint(id)
		upload.CollectionID = &collectionID
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	photo, err := h.photoService.UploadPhoto(c.UserContext(), upload, src)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photo)
}

// ListPhotos accepts optional event_id and collection_id filters.
func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return err
	}

	var filter models.PhotoFilter
	if filter.EventID, err = optionalID(c, "event_id"); err != nil {
		return err
	}
	if filter.CollectionID, err = optionalID(c, "collection_id"); err != nil {
		return err
	}

	photos, err := h.photoService.ListPhotos(c.UserContext(), filter, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photos)
}

func (h *PhotoHandler) ListEventPhotos(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	page, err := parsePage(c, h.validator)
	if err != nil {
		return err
	}

	photos, err := h.photoService.ListEventPhotos(c.UserContext(), eventID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photos)
}

func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	photo, err := h.photoService.GetPhoto(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photo)
}

func (h *PhotoHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePhotoRequest
	if err := parseBody(c, h.validator, &req); err != nil {
		return err
	}

	photo, err := h.photoService.UpdatePhoto(c.UserContext(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photo)
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	photo, err := h.photoService.DeletePhoto(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(photo)
}
