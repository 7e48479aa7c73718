package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"github.com/sefazor/snapvault-backend/pkg/storage"
	"go.uber.org/zap"
)

const (
	MaxUploadSize = 10 * 1024 * 1024

	msgPhotoNotFound = "Photo not found"
)

type PhotoService struct {
	photoRepo      *repository.PhotoRepository
	eventRepo      *repository.EventRepository
	collectionRepo *repository.CollectionRepository
	storage        storage.StorageService
	logger         *zap.Logger
}

// NewPhotoService wires the photo service. store may be nil, in which case
// uploads are refused and only URL based photos can be recorded.
func NewPhotoService(
	photoRepo *repository.PhotoRepository,
	eventRepo *repository.EventRepository,
	collectionRepo *repository.CollectionRepository,
	store storage.StorageService,
	logger *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photoRepo:      photoRepo,
		eventRepo:      eventRepo,
		collectionRepo: collectionRepo,
		storage:        store,
		logger:         logger.Named("photos"),
	}
}

func (s *PhotoService) CreatePhoto(ctx context.Context, req models.PhotoRequest) (*models.Photo, error) {
	if err := s.checkPlacement(ctx, req.EventID, req.CollectionID); err != nil {
		return nil, err
	}
	return s.photoRepo.Create(ctx, req.ToPhoto())
}

// UploadPhoto stores the file bytes in object storage and records the photo.
// The object is removed again when the insert fails.
func (s *PhotoService) UploadPhoto(ctx context.Context, upload models.Upload, body io.Reader) (*models.Photo, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	if upload.Size > MaxUploadSize {
		return nil, fail(ErrValidation, fmt.Sprintf("file size exceeds %d bytes", MaxUploadSize))
	}
	if err := s.checkPlacement(ctx, upload.EventID, upload.CollectionID); err != nil {
		return nil, err
	}

	key := objectKey(upload.EventID, upload.FileName)
	if err := s.storage.Upload(ctx, key, upload.ContentType, body, upload.Size); err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	title := upload.Title
	if title == "" {
		title = upload.FileName
	}

	photo, err := s.photoRepo.Create(ctx, &models.Photo{
		Title:        title,
		URL:          s.storage.PublicURL(key),
		FileSize:     upload.Size,
		EventID:      upload.EventID,
		CollectionID: upload.CollectionID,
		StorageKey:   &key,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to clean up upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("uploaded photo",
		zap.Uint("photo_id", photo.ID),
		zap.Uint("event_id", photo.EventID),
		zap.Int64("size", photo.FileSize),
	)
	return photo, nil
}

func (s *PhotoService) ListPhotos(ctx context.Context, filter models.PhotoFilter, page models.Page) ([]models.Photo, error) {
	return s.photoRepo.List(ctx, filter, page)
}

// ListEventPhotos is ListPhotos scoped to an event that must exist.
func (s *PhotoService) ListEventPhotos(ctx context.Context, eventID uint, page models.Page) ([]models.Photo, error) {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fail(ErrNotFound, msgEventNotFound)
	}
	return s.photoRepo.List(ctx, models.PhotoFilter{EventID: &eventID}, page)
}

func (s *PhotoService) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgPhotoNotFound)
	}
	return photo, nil
}

func (s *PhotoService) UpdatePhoto(ctx context.Context, id uint, req models.UpdatePhotoRequest) (*models.Photo, error) {
	changes, err := req.Changes()
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}

	if req.CollectionID.Present && !req.CollectionID.IsNull() {
		photo, err := s.photoRepo.GetByID(ctx, id)
		if err != nil {
			return nil, notFound(err, msgPhotoNotFound)
		}
		if err := s.checkPlacement(ctx, photo.EventID, req.CollectionID.Value); err != nil {
			return nil, err
		}
	}

	photo, err := s.photoRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFound(err, msgPhotoNotFound)
	}
	return photo, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, id uint) (*models.Photo, error) {
	photo, err := s.photoRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, msgPhotoNotFound)
	}

	if photo.StorageKey != nil && s.storage != nil {
		if err := s.storage.Delete(ctx, *photo.StorageKey); err != nil {
			s.logger.Warn("failed to delete stored photo", zap.String("key", *photo.StorageKey), zap.Error(err))
		}
	}
	return photo, nil
}

// checkPlacement verifies the event exists and, when given, that the
// collection belongs to it.
func (s *PhotoService) checkPlacement(ctx context.Context, eventID uint, collectionID *uint) error {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return err
	}
	if !exists {
		return fail(ErrNotFound, msgEventNotFound)
	}
	if collectionID == nil {
		return nil
	}

	collection, err := s.collectionRepo.GetByID(ctx, *collectionID)
	if err != nil {
		return notFound(err, msgCollectionNotFound)
	}
	if collection.EventID != eventID {
		return fail(ErrValidation, "Collection does not belong to this event")
	}
	return nil
}

func objectKey(eventID uint, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("events/%d/%s%s", eventID, uuid.NewString(), ext)
}
