package models

type SuperAdminSettings struct {
	ID                        uint    `json:"id" gorm:"primaryKey"`
	PlatformName              string  `json:"platform_name" gorm:"not null"`
	SystemDomain              string  `json:"system_domain" gorm:"not null"`
	SupportEmail              string  `json:"support_email" gorm:"not null"`
	MaintenanceMode           bool    `json:"maintenance_mode"`
	TotalStorageTB            float64 `json:"total_storage_tb" gorm:"column:total_storage_tb"`
	ActiveRegions             int     `json:"active_regions"`
	TotalAssets               float64 `json:"total_assets"`
	ImageCompressionEnabled   bool    `json:"image_compression_enabled"`
	CdnEnabled                bool    `json:"cdn_enabled"`
	DefaultCurrency           string  `json:"default_currency"`
	TaxRate                   float64 `json:"tax_rate"`
	StripeLiveKey             *string `json:"stripe_live_key"`
	GoogleWorkspaceConnected  bool    `json:"google_workspace_connected"`
	AwsRekognitionActive      bool    `json:"aws_rekognition_active"`
	WhatsappAPIConnected      bool    `json:"whatsapp_api_connected" gorm:"column:whatsapp_api_connected"`
	Forced2FA                 bool    `json:"forced_2fa" gorm:"column:forced_2fa"`
	SessionTimeoutMinutes     int     `json:"session_timeout_minutes"`
	AutoApprovalEnabled       bool    `json:"auto_approval_enabled"`
	EmailNotificationsEnabled bool    `json:"email_notifications_enabled"`
	// Singleton is always true; a unique index on it keeps the table to one row.
	Singleton bool `json:"-" gorm:"not null;uniqueIndex:idx_super_admin_settings_singleton"`
}

// DefaultSuperAdminSettings is the row created by initialize.
func DefaultSuperAdminSettings() *SuperAdminSettings {
	return &SuperAdminSettings{
		PlatformName:              "SnapVault",
		SystemDomain:              "app.snapvault.com",
		SupportEmail:              "admin-support@snapvault.com",
		MaintenanceMode:           false,
		TotalStorageTB:            12.4,
		ActiveRegions:             4,
		TotalAssets:               8.2,
		ImageCompressionEnabled:   true,
		CdnEnabled:                true,
		DefaultCurrency:           "USD",
		TaxRate:                   18.0,
		GoogleWorkspaceConnected:  true,
		AwsRekognitionActive:      true,
		WhatsappAPIConnected:      false,
		Forced2FA:                 true,
		SessionTimeoutMinutes:     30,
		AutoApprovalEnabled:       true,
		EmailNotificationsEnabled: true,
	}
}

// SuperAdminSettingsRequest mirrors the column defaults: fields left out of
// the payload take the value they would get from an empty insert.
type SuperAdminSettingsRequest struct {
	PlatformName              *string  `json:"platform_name" validate:"omitempty,min=1"`
	SystemDomain              string   `json:"system_domain" validate:"required"`
	SupportEmail              string   `json:"support_email" validate:"required"`
	MaintenanceMode           *bool    `json:"maintenance_mode"`
	TotalStorageTB            *float64 `json:"total_storage_tb" validate:"omitempty,min=0"`
	ActiveRegions             *int     `json:"active_regions" validate:"omitempty,min=0"`
	TotalAssets               *float64 `json:"total_assets" validate:"omitempty,min=0"`
	ImageCompressionEnabled   *bool    `json:"image_compression_enabled"`
	CdnEnabled                *bool    `json:"cdn_enabled"`
	DefaultCurrency           *string  `json:"default_currency"`
	TaxRate                   *float64 `json:"tax_rate" validate:"omitempty,min=0"`
	StripeLiveKey             *string  `json:"stripe_live_key"`
	GoogleWorkspaceConnected  *bool    `json:"google_workspace_connected"`
	AwsRekognitionActive      *bool    `json:"aws_rekognition_active"`
	WhatsappAPIConnected      *bool    `json:"whatsapp_api_connected"`
	Forced2FA                 *bool    `json:"forced_2fa"`
	SessionTimeoutMinutes     *int     `json:"session_timeout_minutes" validate:"omitempty,min=1"`
	AutoApprovalEnabled       *bool    `json:"auto_approval_enabled"`
	EmailNotificationsEnabled *bool    `json:"email_notifications_enabled"`
}

func (r *SuperAdminSettingsRequest) ToSuperAdminSettings() *SuperAdminSettings {
	return &SuperAdminSettings{
		PlatformName:              valueOr(r.PlatformName, "SnapVault"),
		SystemDomain:              r.SystemDomain,
		SupportEmail:              r.SupportEmail,
		MaintenanceMode:           valueOr(r.MaintenanceMode, false),
		TotalStorageTB:            valueOr(r.TotalStorageTB, 0),
		ActiveRegions:             valueOr(r.ActiveRegions, 4),
		TotalAssets:               valueOr(r.TotalAssets, 0),
		ImageCompressionEnabled:   valueOr(r.ImageCompressionEnabled, true),
		CdnEnabled:                valueOr(r.CdnEnabled, true),
		DefaultCurrency:           valueOr(r.DefaultCurrency, "USD"),
		TaxRate:                   valueOr(r.TaxRate, 18.0),
		StripeLiveKey:             r.StripeLiveKey,
		GoogleWorkspaceConnected:  valueOr(r.GoogleWorkspaceConnected, false),
		AwsRekognitionActive:      valueOr(r.AwsRekognitionActive, false),
		WhatsappAPIConnected:      valueOr(r.WhatsappAPIConnected, false),
		Forced2FA:                 valueOr(r.Forced2FA, true),
		SessionTimeoutMinutes:     valueOr(r.SessionTimeoutMinutes, 30),
		AutoApprovalEnabled:       valueOr(r.AutoApprovalEnabled, true),
		EmailNotificationsEnabled: valueOr(r.EmailNotificationsEnabled, true),
	}
}

type UpdateSuperAdminSettingsRequest struct {
	PlatformName              Nullable[string]  `json:"platform_name" validate:"omitempty,min=1"`
	SystemDomain              Nullable[string]  `json:"system_domain" validate:"omitempty,min=1"`
	SupportEmail              Nullable[string]  `json:"support_email" validate:"omitempty,min=1"`
	MaintenanceMode           Nullable[bool]    `json:"maintenance_mode"`
	TotalStorageTB            Nullable[float64] `json:"total_storage_tb" validate:"omitempty,min=0"`
	ActiveRegions             Nullable[int]     `json:"active_regions" validate:"omitempty,min=0"`
	TotalAssets               Nullable[float64] `json:"total_assets" validate:"omitempty,min=0"`
	ImageCompressionEnabled   Nullable[bool]    `json:"image_compression_enabled"`
	CdnEnabled                Nullable[bool]    `json:"cdn_enabled"`
	DefaultCurrency           Nullable[string]  `json:"default_currency"`
	TaxRate                   Nullable[float64] `json:"tax_rate" validate:"omitempty,min=0"`
	StripeLiveKey             Nullable[string]  `json:"stripe_live_key"`
	GoogleWorkspaceConnected  Nullable[bool]    `json:"google_workspace_connected"`
	AwsRekognitionActive      Nullable[bool]    `json:"aws_rekognition_active"`
	WhatsappAPIConnected      Nullable[bool]    `json:"whatsapp_api_connected"`
	Forced2FA                 Nullable[bool]    `json:"forced_2fa"`
	SessionTimeoutMinutes     Nullable[int]     `json:"session_timeout_minutes" validate:"omitempty,min=1"`
	AutoApprovalEnabled       Nullable[bool]    `json:"auto_approval_enabled"`
	EmailNotificationsEnabled Nullable[bool]    `json:"email_notifications_enabled"`
}

func (r *UpdateSuperAdminSettingsRequest) Changes() (Changes, error) {
	c := Changes{}
	required := []struct {
		column string
		value  Nullable[string]
	}{
		{"platform_name", r.PlatformName},
		{"system_domain", r.SystemDomain},
		{"support_email", r.SupportEmail},
	}
	for _, f := range required {
		if err := requireText(c, f.column, f.value); err != nil {
			return nil, err
		}
	}

	setColumn(c, "maintenance_mode", r.MaintenanceMode)
	setColumn(c, "total_storage_tb", r.TotalStorageTB)
	setColumn(c, "active_regions", r.ActiveRegions)
	setColumn(c, "total_assets", r.TotalAssets)
	setColumn(c, "image_compression_enabled", r.ImageCompressionEnabled)
	setColumn(c, "cdn_enabled", r.CdnEnabled)
	setColumn(c, "default_currency", r.DefaultCurrency)
	setColumn(c, "tax_rate", r.TaxRate)
	setColumn(c, "stripe_live_key", r.StripeLiveKey)
	setColumn(c, "google_workspace_connected", r.GoogleWorkspaceConnected)
	setColumn(c, "aws_rekognition_active", r.AwsRekognitionActive)
	setColumn(c, "whatsapp_api_connected", r.WhatsappAPIConnected)
	setColumn(c, "forced_2fa", r.Forced2FA)
	setColumn(c, "session_timeout_minutes", r.SessionTimeoutMinutes)
	setColumn(c, "auto_approval_enabled", r.AutoApprovalEnabled)
	setColumn(c, "email_notifications_enabled", r.EmailNotificationsEnabled)
	return c, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
