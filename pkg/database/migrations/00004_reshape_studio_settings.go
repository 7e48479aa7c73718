package migrations

import (
	"gorm.io/gorm"
)

// studioSettingsV4 splits the studio profile into personal, company and
// billing details. Every field is optional.
type studioSettingsV4 struct {
	ID                uint `gorm:"primaryKey"`
	FullName          *string
	MobileNumber      *string
	EmailID           *string
	Country           *string
	State             *string
	City              *string
	CompanyName       *string
	Industry          *string
	Area              *string
	AvgEventsPerYear  *string
	BillingCompany    *string `gorm:"column:billing_company_name"`
	GstVatNumber      *string
	ProfilePictureURL *string
}

func (studioSettingsV4) TableName() string { return "studio_settings" }

var studioSettingsV4Added = []string{
	"Country", "State", "City", "Industry", "Area",
	"AvgEventsPerYear", "BillingCompany", "GstVatNumber",
}

var studioSettingsV1Dropped = []string{"job_title", "website_url", "business_address"}

func upReshapeStudioSettings(tx *gorm.DB) error {
	m := tx.Migrator()

	if err := m.RenameColumn(&studioSettingsV4{}, "email", "email_id"); err != nil {
		return err
	}
	if err := m.RenameColumn(&studioSettingsV4{}, "phone", "mobile_number"); err != nil {
		return err
	}
	if err := addColumns(m, &studioSettingsV4{}, studioSettingsV4Added...); err != nil {
		return err
	}
	if err := dropColumns(m, &studioSettingsV1{}, studioSettingsV1Dropped...); err != nil {
		return err
	}

	for _, f := range []string{"FullName", "CompanyName", "EmailID"} {
		if err := m.AlterColumn(&studioSettingsV4{}, f); err != nil {
			return err
		}
	}
	return nil
}

// studioSettingsV4Down is the v4 table shape with the legacy names restored,
// used to put back the NOT NULL constraints.
type studioSettingsV4Down struct {
	ID          uint   `gorm:"primaryKey"`
	FullName    string `gorm:"not null"`
	Email       string `gorm:"not null"`
	CompanyName string `gorm:"not null"`
}

func (studioSettingsV4Down) TableName() string { return "studio_settings" }

func downReshapeStudioSettings(tx *gorm.DB) error {
	m := tx.Migrator()

	if err := m.RenameColumn(&studioSettingsV4{}, "email_id", "email"); err != nil {
		return err
	}
	if err := m.RenameColumn(&studioSettingsV4{}, "mobile_number", "phone"); err != nil {
		return err
	}
	if err := addColumns(m, &studioSettingsV1{}, "JobTitle", "WebsiteURL", "BusinessAddress"); err != nil {
		return err
	}
	if err := dropColumns(m, &studioSettingsV4{}, studioSettingsV4Added...); err != nil {
		return err
	}

	// rows written under v4 may hold NULLs the old shape rejects
	for _, col := range []string{"full_name", "email", "company_name"} {
		if err := tx.Table("studio_settings").Where(col+" IS NULL").Update(col, "").Error; err != nil {
			return err
		}
	}
	for _, f := range []string{"FullName", "Email", "CompanyName"} {
		if err := m.AlterColumn(&studioSettingsV4Down{}, f); err != nil {
			return err
		}
	}
	return nil
}
