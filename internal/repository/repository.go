package repository

import (
	"errors"
	"strings"

	"github.com/sefazor/snapvault-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps driver and gorm errors onto the package errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicate(err):
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func paginate(page models.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id").Offset(page.Skip).Limit(page.Limit)
	}
}

// applyChanges writes the changed columns of row id and reloads it into dest.
func applyChanges(tx *gorm.DB, dest interface{}, id uint, changes models.Changes) error {
	if err := tx.First(dest, id).Error; err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	if err := tx.Model(dest).Updates(map[string]interface{}(changes)).Error; err != nil {
		return err
	}
	return tx.First(dest, id).Error
}
