package migrations

import (
	"time"

	"gorm.io/gorm"
)

type studioSettingsV5 struct {
	UserID    *uint   `gorm:"uniqueIndex:idx_studio_settings_user_id"`
	EmailID   *string `gorm:"uniqueIndex:idx_studio_settings_email_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (studioSettingsV5) TableName() string { return "studio_settings" }

type photoV5 struct {
	StorageKey *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (photoV5) TableName() string { return "photos" }

func upAddOwnershipAndTimestamps(tx *gorm.DB) error {
	m := tx.Migrator()
	now := time.Now().UTC()

	if err := addColumns(m, &studioSettingsV5{}, "UserID", "CreatedAt", "UpdatedAt"); err != nil {
		return err
	}
	if err := tx.Table("studio_settings").Where("email_id = ?", "").Update("email_id", nil).Error; err != nil {
		return err
	}
	for _, idx := range []string{"idx_studio_settings_user_id", "idx_studio_settings_email_id"} {
		if err := m.CreateIndex(&studioSettingsV5{}, idx); err != nil {
			return err
		}
	}

	if err := addColumns(m, &photoV5{}, "StorageKey", "CreatedAt", "UpdatedAt"); err != nil {
		return err
	}

	for _, table := range []string{"studio_settings", "photos"} {
		err := tx.Table(table).Where("created_at IS NULL").
			Updates(map[string]interface{}{"created_at": now, "updated_at": now}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func downAddOwnershipAndTimestamps(tx *gorm.DB) error {
	m := tx.Migrator()

	if err := dropColumns(m, &photoV5{}, "StorageKey", "CreatedAt", "UpdatedAt"); err != nil {
		return err
	}
	// the SQLite table rebuild above loses the step 3 index
	if !m.HasIndex(&photoCollection{}, "idx_photos_collection_id") {
		if err := m.CreateIndex(&photoCollection{}, "idx_photos_collection_id"); err != nil {
			return err
		}
	}

	for _, idx := range []string{"idx_studio_settings_email_id", "idx_studio_settings_user_id"} {
		if err := dropIndexIfExists(m, &studioSettingsV5{}, idx); err != nil {
			return err
		}
	}
	return dropColumns(m, &studioSettingsV5{}, "UserID", "CreatedAt", "UpdatedAt")
}
