package repository

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, translate(err)
	}
	return photo, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

func (r *PhotoRepository) List(ctx context.Context, filter models.PhotoFilter, page models.Page) ([]models.Photo, error) {
	photos := []models.Photo{}
	q := r.db.WithContext(ctx).Scopes(paginate(page))
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.CollectionID != nil {
		q = q.Where("collection_id = ?", *filter.CollectionID)
	}
	err := q.Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) Update(ctx context.Context, id uint, changes models.Changes) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyChanges(tx, &photo, id, changes)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&photo, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Photo{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}
