package repository

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, translate(err)
	}
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *EventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) List(ctx context.Context, page models.Page) ([]models.Event, error) {
	events := []models.Event{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(ctx context.Context, id uint, changes models.Changes) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyChanges(tx, &event, id, changes)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// Delete removes an event together with its photos and collections. It
// returns the deleted event and the storage keys of the removed photos.
func (r *EventRepository) Delete(ctx context.Context, id uint) (*models.Event, []string, error) {
	var (
		event models.Event
		keys  []string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Photo{}).
			Where("event_id = ? AND storage_key IS NOT NULL", id).
			Pluck("storage_key", &keys).Error
		if err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Collection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
	if err != nil {
		return nil, nil, translate(err)
	}
	return &event, keys, nil
}
