package service

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"github.com/sefazor/snapvault-backend/pkg/qrcode"
	"github.com/sefazor/snapvault-backend/pkg/storage"
	"go.uber.org/zap"
)

const msgEventNotFound = "Event not found"

type EventService struct {
	eventRepo *repository.EventRepository
	storage   storage.StorageService
	qr        *qrcode.QRService
	logger    *zap.Logger
}

// NewEventService wires the event service. store may be nil when object
// storage is disabled.
func NewEventService(eventRepo *repository.EventRepository, store storage.StorageService, qr *qrcode.QRService, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		storage:   store,
		qr:        qr,
		logger:    logger.Named("events"),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	return s.eventRepo.Create(ctx, req.ToEvent())
}

func (s *EventService) ListEvents(ctx context.Context, page models.Page) ([]models.Event, error) {
	return s.eventRepo.List(ctx, page)
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgEventNotFound)
	}
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, req models.UpdateEventRequest) (*models.Event, error) {
	changes, err := req.Changes()
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}

	event, err := s.eventRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFound(err, msgEventNotFound)
	}
	return event, nil
}

// DeleteEvent removes the event with its photos and collections. Stored
// photo objects are removed afterwards; failures there are only logged.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, keys, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, msgEventNotFound)
	}

	s.removeObjects(ctx, keys)
	s.logger.Info("deleted event", zap.Uint("event_id", id), zap.Int("stored_photos", len(keys)))
	return event, nil
}

// QRCode renders the gallery link of an existing event as a PNG.
func (s *EventService) QRCode(ctx context.Context, id uint, size int) ([]byte, error) {
	exists, err := s.eventRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fail(ErrNotFound, msgEventNotFound)
	}

	png, err := s.qr.GenerateQRCode(id, size)
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}
	return png, nil
}

func (s *EventService) removeObjects(ctx context.Context, keys []string) {
	if s.storage == nil {
		return
	}
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete stored photo", zap.String("key", key), zap.Error(err))
		}
	}
}
