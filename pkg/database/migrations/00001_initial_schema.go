package migrations

import (
	"time"

	"gorm.io/gorm"
)

type userV1 struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	HashedPassword string `gorm:"not null"`
	FullName       *string
	IsActive       bool   `gorm:"not null;default:true"`
	IsSuperuser    bool   `gorm:"not null;default:false"`
	Role           string `gorm:"size:20;not null;default:studio"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (userV1) TableName() string { return "users" }

type eventV1 struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"not null"`
	StartDate   *time.Time `gorm:"type:date"`
	EndDate     *time.Time `gorm:"type:date"`
	EventType   *string
	Location    *string
	Description *string `gorm:"type:text"`
	TemplateID  *string
	Status      string `gorm:"size:20;not null;default:unpublished"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (eventV1) TableName() string { return "events" }

type collectionV1 struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	EventID   uint    `gorm:"not null;index:idx_collections_event_id"`
	Event     eventV1 `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (collectionV1) TableName() string { return "collections" }

type photoV1 struct {
	ID      uint    `gorm:"primaryKey"`
	Title   *string `gorm:"index:idx_photos_title"`
	URL     *string
	EventID uint    `gorm:"not null;index:idx_photos_event_id"`
	Event   eventV1 `gorm:"constraint:OnDelete:CASCADE"`
}

func (photoV1) TableName() string { return "photos" }

// studioSettingsV1 is the first studio profile shape, before the contact
// and billing split.
type studioSettingsV1 struct {
	ID                uint   `gorm:"primaryKey"`
	FullName          string `gorm:"not null"`
	Email             string `gorm:"not null"`
	Phone             *string
	JobTitle          *string
	CompanyName       string `gorm:"not null"`
	WebsiteURL        *string
	BusinessAddress   *string `gorm:"type:text"`
	ProfilePictureURL *string
}

func (studioSettingsV1) TableName() string { return "studio_settings" }

type superAdminSettingsV1 struct {
	ID                        uint     `gorm:"primaryKey"`
	PlatformName              string   `gorm:"not null;default:SnapVault"`
	SystemDomain              string   `gorm:"not null"`
	SupportEmail              string   `gorm:"not null"`
	MaintenanceMode           *bool    `gorm:"default:false"`
	TotalStorageTB            *float64 `gorm:"column:total_storage_tb;default:0"`
	ActiveRegions             *int     `gorm:"default:4"`
	TotalAssets               *float64 `gorm:"default:0"`
	ImageCompressionEnabled   *bool    `gorm:"default:true"`
	CdnEnabled                *bool    `gorm:"default:true"`
	DefaultCurrency           *string  `gorm:"default:USD"`
	TaxRate                   *float64 `gorm:"default:18"`
	StripeLiveKey             *string
	GoogleWorkspaceConnected  *bool `gorm:"default:false"`
	AwsRekognitionActive      *bool `gorm:"default:false"`
	WhatsappAPIConnected      *bool `gorm:"column:whatsapp_api_connected;default:false"`
	Forced2FA                 *bool `gorm:"column:forced_2fa;default:true"`
	SessionTimeoutMinutes     *int  `gorm:"default:30"`
	AutoApprovalEnabled       *bool `gorm:"default:true"`
	EmailNotificationsEnabled *bool `gorm:"default:true"`
}

func (superAdminSettingsV1) TableName() string { return "super_admin_settings" }

// testV1 is a diagnostic scratch table with no API.
type testV1 struct {
	ID  uint `gorm:"primaryKey"`
	A   *int
	B   *int
	Sum *int
}

func (testV1) TableName() string { return "test" }

func initialTables() []interface{} {
	return []interface{}{
		&userV1{},
		&eventV1{},
		&collectionV1{},
		&photoV1{},
		&studioSettingsV1{},
		&superAdminSettingsV1{},
		&testV1{},
	}
}

func upInitialSchema(tx *gorm.DB) error {
	m := tx.Migrator()
	for _, table := range initialTables() {
		if err := m.CreateTable(table); err != nil {
			return err
		}
	}
	return nil
}

func downInitialSchema(tx *gorm.DB) error {
	tables := initialTables()
	m := tx.Migrator()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := m.DropTable(tables[i]); err != nil {
			return err
		}
	}
	return nil
}
