package migrations

import (
	"gorm.io/gorm"
)

// superAdminSingleton pins super_admin_settings to a single row: every row
// carries singleton=true under a unique index.
type superAdminSingleton struct {
	Singleton bool `gorm:"not null;default:true;uniqueIndex:idx_super_admin_settings_singleton"`
}

func (superAdminSingleton) TableName() string { return "super_admin_settings" }

func upSuperAdminSingleton(tx *gorm.DB) error {
	// keep the oldest row if earlier releases let duplicates in
	err := tx.Exec("DELETE FROM super_admin_settings WHERE id <> (SELECT MIN(id) FROM super_admin_settings)").Error
	if err != nil {
		return err
	}

	m := tx.Migrator()
	if err := m.AddColumn(&superAdminSingleton{}, "Singleton"); err != nil {
		return err
	}
	return m.CreateIndex(&superAdminSingleton{}, "idx_super_admin_settings_singleton")
}

func downSuperAdminSingleton(tx *gorm.DB) error {
	m := tx.Migrator()
	if err := dropIndexIfExists(m, &superAdminSingleton{}, "idx_super_admin_settings_singleton"); err != nil {
		return err
	}
	return m.DropColumn(&superAdminSingleton{}, "Singleton")
}
