package repository

import (
	"context"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

// SuperAdminSettingsRepository works on the single platform settings row.
type SuperAdminSettingsRepository struct {
	db *gorm.DB
}

func NewSuperAdminSettingsRepository(db *gorm.DB) *SuperAdminSettingsRepository {
	return &SuperAdminSettingsRepository{db: db}
}

func (r *SuperAdminSettingsRepository) Get(ctx context.Context) (*models.SuperAdminSettings, error) {
	var settings models.SuperAdminSettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

// Create inserts the row. A second row fails with ErrDuplicate.
func (r *SuperAdminSettingsRepository) Create(ctx context.Context, settings *models.SuperAdminSettings) (*models.SuperAdminSettings, error) {
	settings.Singleton = true
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, translate(err)
	}
	return settings, nil
}

func (r *SuperAdminSettingsRepository) Update(ctx context.Context, changes models.Changes) (*models.SuperAdminSettings, error) {
	var settings models.SuperAdminSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&settings).Error; err != nil {
			return err
		}
		return applyChanges(tx, &settings, settings.ID, changes)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *SuperAdminSettingsRepository) Delete(ctx context.Context) (*models.SuperAdminSettings, error) {
	var settings models.SuperAdminSettings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&settings).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SuperAdminSettings{}, settings.ID).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}
