package service

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
)

const msgCollectionNotFound = "Collection not found"

type CollectionService struct {
	collectionRepo *repository.CollectionRepository
	eventRepo      *repository.EventRepository
}

func NewCollectionService(collectionRepo *repository.CollectionRepository, eventRepo *repository.EventRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		eventRepo:      eventRepo,
	}
}

func (s *CollectionService) CreateCollection(ctx context.Context, req models.CollectionRequest) (*models.Collection, error) {
	exists, err := s.eventRepo.Exists(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fail(ErrNotFound, msgEventNotFound)
	}

	return s.collectionRepo.Create(ctx, &models.Collection{
		Name:    req.Name,
		EventID: req.EventID,
	})
}

func (s *CollectionService) ListCollections(ctx context.Context, eventID *uint, page models.Page) ([]models.Collection, error) {
	return s.collectionRepo.List(ctx, eventID, page)
}

func (s *CollectionService) GetCollection(ctx context.Context, id uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, msgCollectionNotFound)
	}
	return collection, nil
}

func (s *CollectionService) UpdateCollection(ctx context.Context, id uint, req models.UpdateCollectionRequest) (*models.Collection, error) {
	changes, err := req.Changes()
	if err != nil {
		return nil, fail(ErrValidation, err.Error())
	}

	collection, err := s.collectionRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFound(err, msgCollectionNotFound)
	}
	return collection, nil
}

// DeleteCollection removes the collection. Its photos stay with the event.
func (s *CollectionService) DeleteCollection(ctx context.Context, id uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, msgCollectionNotFound)
	}
	return collection, nil
}
