package migrations

import (
	"gorm.io/gorm"
)

type photoCollection struct {
	CollectionID *uint `gorm:"index:idx_photos_collection_id"`
}

func (photoCollection) TableName() string { return "photos" }

func upAddPhotoCollection(tx *gorm.DB) error {
	m := tx.Migrator()
	if err := m.AddColumn(&photoCollection{}, "CollectionID"); err != nil {
		return err
	}
	return m.CreateIndex(&photoCollection{}, "idx_photos_collection_id")
}

func downAddPhotoCollection(tx *gorm.DB) error {
	m := tx.Migrator()
	if err := dropIndexIfExists(m, &photoCollection{}, "idx_photos_collection_id"); err != nil {
		return err
	}
	return m.DropColumn(&photoCollection{}, "CollectionID")
}
