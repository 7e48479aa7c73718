package migrations

import (
	"gorm.io/gorm"
)

type photoFileSize struct {
	FileSize int64 `gorm:"default:0"`
}

func (photoFileSize) TableName() string { return "photos" }

func upAddPhotoFileSize(tx *gorm.DB) error {
	return tx.Migrator().AddColumn(&photoFileSize{}, "FileSize")
}

func downAddPhotoFileSize(tx *gorm.DB) error {
	return tx.Migrator().DropColumn(&photoFileSize{}, "FileSize")
}
