package models

import (
	"time"
)

type Photo struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	FileSize     int64     `json:"file_size"`
	EventID      uint      `json:"event_id" gorm:"not null;index"`
	CollectionID *uint     `json:"collection_id"`
	StorageKey   *string   `json:"storage_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PhotoFilter narrows photo listings. Zero fields are ignored.
type PhotoFilter struct {
	EventID      *uint
	CollectionID *uint
}

type PhotoRequest struct {
	Title        string `json:"title" validate:"required"`
	URL          string `json:"url" validate:"required"`
	FileSize     int64  `json:"file_size" validate:"min=0"`
	EventID      uint   `json:"event_id"`
	CollectionID *uint  `json:"collection_id"`
}

func (r *PhotoRequest) ToPhoto() *Photo {
	return &Photo{
		Title:        r.Title,
		URL:          r.URL,
		FileSize:     r.FileSize,
		EventID:      r.EventID,
		CollectionID: r.CollectionID,
	}
}

type UpdatePhotoRequest struct {
	Title        Nullable[string] `json:"title" validate:"omitempty,min=1"`
	URL          Nullable[string] `json:"url" validate:"omitempty,min=1"`
	FileSize     Nullable[int64]  `json:"file_size" validate:"omitempty,min=0"`
	CollectionID Nullable[uint]   `json:"collection_id"`
}

func (r *UpdatePhotoRequest) Changes() (Changes, error) {
	c := Changes{}
	if err := requireText(c, "title", r.Title); err != nil {
		return nil, err
	}
	if err := requireText(c, "url", r.URL); err != nil {
		return nil, err
	}
	if err := requireColumn(c, "file_size", r.FileSize); err != nil {
		return nil, err
	}
	setColumn(c, "collection_id", r.CollectionID)
	return c, nil
}

// Upload describes a photo whose bytes arrive as a multipart file.
type Upload struct {
	EventID      uint
	CollectionID *uint
	Title        string
	FileName     string
	ContentType  string
	Size         int64
}
