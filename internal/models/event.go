package models

import (
	"errors"
	"time"
)

type EventStatus string

const (
	EventStatusDraft       EventStatus = "draft"
	EventStatusPublished   EventStatus = "published"
	EventStatusUnpublished EventStatus = "unpublished"
	EventStatusExpired     EventStatus = "expired"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusUnpublished, EventStatusExpired:
		return true
	}
	return false
}

type Event struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	StartDate   *Date       `json:"start_date"`
	EndDate     *Date       `json:"end_date"`
	EventType   *string     `json:"event_type"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	TemplateID  *string     `json:"template_id"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type EventRequest struct {
	Name        string  `json:"name" validate:"required"`
	StartDate   *Date   `json:"start_date"`
	EndDate     *Date   `json:"end_date"`
	EventType   *string `json:"event_type"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	TemplateID  *string `json:"template_id"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft published unpublished expired"`
}

func (r *EventRequest) ToEvent() *Event {
	status := EventStatusUnpublished
	if r.Status != nil {
		status = EventStatus(*r.Status)
	}
	return &Event{
		Name:        r.Name,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		EventType:   r.EventType,
		Location:    r.Location,
		Description: r.Description,
		TemplateID:  r.TemplateID,
		Status:      status,
	}
}

type UpdateEventRequest struct {
	Name        Nullable[string] `json:"name" validate:"omitempty,min=1"`
	StartDate   Nullable[Date]   `json:"start_date"`
	EndDate     Nullable[Date]   `json:"end_date"`
	EventType   Nullable[string] `json:"event_type"`
	Location    Nullable[string] `json:"location"`
	Description Nullable[string] `json:"description"`
	TemplateID  Nullable[string] `json:"template_id"`
	Status      Nullable[string] `json:"status" validate:"omitempty,oneof=draft published unpublished expired"`
}

func (r *UpdateEventRequest) Changes() (Changes, error) {
	c := Changes{}
	if err := requireText(c, "name", r.Name); err != nil {
		return nil, err
	}
	if err := requireColumn(c, "status", r.Status); err != nil {
		return nil, err
	}
	if r.Status.Value != nil && !EventStatus(*r.Status.Value).Valid() {
		return nil, errors.New("status must be one of: draft published unpublished expired")
	}
	setColumn(c, "start_date", r.StartDate)
	setColumn(c, "end_date", r.EndDate)
	setColumn(c, "event_type", r.EventType)
	setColumn(c, "location", r.Location)
	setColumn(c, "description", r.Description)
	setColumn(c, "template_id", r.TemplateID)
	return c, nil
}
