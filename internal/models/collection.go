package models

import (
	"time"
)

type Collection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	EventID   uint      `json:"event_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CollectionRequest struct {
	Name    string `json:"name" validate:"required"`
	EventID uint   `json:"event_id" validate:"required"`
}

type UpdateCollectionRequest struct {
	Name Nullable[string] `json:"name" validate:"omitempty,min=1"`
}

func (r *UpdateCollectionRequest) Changes() (Changes, error) {
	c := Changes{}
	if err := requireText(c, "name", r.Name); err != nil {
		return nil, err
	}
	return c, nil
}
