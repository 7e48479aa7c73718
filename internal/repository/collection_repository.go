package repository

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, collection *models.Collection) (*models.Collection, error) {
	if err := r.db.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, translate(err)
	}
	return collection, nil
}

func (r *CollectionRepository) GetByID(ctx context.Context, id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.WithContext(ctx).First(&collection, id).Error; err != nil {
		return nil, translate(err)
	}
	return &collection, nil
}

// List returns collections in id order, optionally only those of one event.
func (r *CollectionRepository) List(ctx context.Context, eventID *uint, page models.Page) ([]models.Collection, error) {
	collections := []models.Collection{}
	q := r.db.WithContext(ctx).Scopes(paginate(page))
	if eventID != nil {
		q = q.Where("event_id = ?", *eventID)
	}
	err := q.Find(&collections).Error
	return collections, err
}

func (r *CollectionRepository) Update(ctx context.Context, id uint, changes models.Changes) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyChanges(tx, &collection, id, changes)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &collection, nil
}

// Delete removes a collection. Its photos stay with the event and lose their
// collection reference.
func (r *CollectionRepository) Delete(ctx context.Context, id uint) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&collection, id).Error; err != nil {
			return err
		}
		err := tx.Model(&models.Photo{}).
			Where("collection_id = ?", id).
			Update("collection_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &collection, nil
}
