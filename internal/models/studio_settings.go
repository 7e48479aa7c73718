package models

import (
	"time"
)

type StudioSettings struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            *uint     `json:"user_id" gorm:"uniqueIndex:idx_studio_settings_user_id"`
	FullName          *string   `json:"full_name"`
	MobileNumber      *string   `json:"mobile_number"`
	EmailID           *string   `json:"email_id" gorm:"uniqueIndex:idx_studio_settings_email_id"`
	Country           *string   `json:"country"`
	State             *string   `json:"state"`
	City              *string   `json:"city"`
	CompanyName       *string   `json:"company_name"`
	Industry          *string   `json:"industry"`
	Area              *string   `json:"area"`
	AvgEventsPerYear  *string   `json:"avg_events_per_year"`
	BillingCompany    *string   `json:"billing_company_name" gorm:"column:billing_company_name"`
	GstVatNumber      *string   `json:"gst_vat_number"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (StudioSettings) TableName() string {
	return "studio_settings"
}

func (s *StudioSettings) OwnedBy(userID uint) bool {
	return s.UserID != nil && *s.UserID == userID
}

type StudioSettingsRequest struct {
	FullName          *string `json:"full_name"`
	MobileNumber      *string `json:"mobile_number"`
	EmailID           *string `json:"email_id" validate:"omitempty,email"`
	Country           *string `json:"country"`
	State             *string `json:"state"`
	City              *string `json:"city"`
	CompanyName       *string `json:"company_name"`
	Industry          *string `json:"industry"`
	Area              *string `json:"area"`
	AvgEventsPerYear  *string `json:"avg_events_per_year"`
	BillingCompany    *string `json:"billing_company_name"`
	GstVatNumber      *string `json:"gst_vat_number"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

func (r *StudioSettingsRequest) ToStudioSettings(userID uint) *StudioSettings {
	return &StudioSettings{
		UserID:            &userID,
		FullName:          r.FullName,
		MobileNumber:      r.MobileNumber,
		EmailID:           r.EmailID,
		Country:           r.Country,
		State:             r.State,
		City:              r.City,
		CompanyName:       r.CompanyName,
		Industry:          r.Industry,
		Area:              r.Area,
		AvgEventsPerYear:  r.AvgEventsPerYear,
		BillingCompany:    r.BillingCompany,
		GstVatNumber:      r.GstVatNumber,
		ProfilePictureURL: r.ProfilePictureURL,
	}
}

type UpdateStudioSettingsRequest struct {
	FullName          Nullable[string] `json:"full_name"`
	MobileNumber      Nullable[string] `json:"mobile_number"`
	EmailID           Nullable[string] `json:"email_id" validate:"omitempty,email"`
	Country           Nullable[string] `json:"country"`
	State             Nullable[string] `json:"state"`
	City              Nullable[string] `json:"city"`
	CompanyName       Nullable[string] `json:"company_name"`
	Industry          Nullable[string] `json:"industry"`
	Area              Nullable[string] `json:"area"`
	AvgEventsPerYear  Nullable[string] `json:"avg_events_per_year"`
	BillingCompany    Nullable[string] `json:"billing_company_name"`
	GstVatNumber      Nullable[string] `json:"gst_vat_number"`
	ProfilePictureURL Nullable[string] `json:"profile_picture_url"`
}

func (r *UpdateStudioSettingsRequest) Changes() (Changes, error) {
	c := Changes{}
	setColumn(c, "full_name", r.FullName)
	setColumn(c, "mobile_number", r.MobileNumber)
	setColumn(c, "email_id", r.EmailID)
	setColumn(c, "country", r.Country)
	setColumn(c, "state", r.State)
	setColumn(c, "city", r.City)
	setColumn(c, "company_name", r.CompanyName)
	setColumn(c, "industry", r.Industry)
	setColumn(c, "area", r.Area)
	setColumn(c, "avg_events_per_year", r.AvgEventsPerYear)
	setColumn(c, "billing_company_name", r.BillingCompany)
	setColumn(c, "gst_vat_number", r.GstVatNumber)
	setColumn(c, "profile_picture_url", r.ProfilePictureURL)
	return c, nil
}
