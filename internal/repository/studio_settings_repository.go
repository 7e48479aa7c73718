package repository

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

type StudioSettingsRepository struct {
	db *gorm.DB
}

func NewStudioSettingsRepository(db *gorm.DB) *StudioSettingsRepository {
	return &StudioSettingsRepository{db: db}
}

func (r *StudioSettingsRepository) Create(ctx context.Context, settings *models.StudioSettings) (*models.StudioSettings, error) {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, translate(err)
	}
	return settings, nil
}

func (r *StudioSettingsRepository) GetByID(ctx context.Context, id uint) (*models.StudioSettings, error) {
	var settings models.StudioSettings
	if err := r.db.WithContext(ctx).First(&settings, id).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *StudioSettingsRepository) GetByUserID(ctx context.Context, userID uint) (*models.StudioSettings, error) {
	var settings models.StudioSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *StudioSettingsRepository) List(ctx context.Context, page models.Page) ([]models.StudioSettings, error) {
	settings := []models.StudioSettings{}
	err := r.db.WithContext(ctx).Scopes(paginate(page)).Find(&settings).Error
	return settings, err
}

// EmailTaken reports whether another row already uses email. excludeID
// skips the row being updated; pass 0 on create.
func (r *StudioSettingsRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.StudioSettings{}).Where("email_id = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *StudioSettingsRepository) Update(ctx context.Context, id uint, changes models.Changes) (*models.StudioSettings, error) {
	var settings models.StudioSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyChanges(tx, &settings, id, changes)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *StudioSettingsRepository) Delete(ctx context.Context, id uint) (*models.StudioSettings, error) {
	var settings models.StudioSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&settings, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StudioSettings{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}
