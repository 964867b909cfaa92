package models

import "time"

type EnquiryModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	PhoneNumber         string
	Name                string
	Rate                float64
	Commission          float64
	MediatorCommission  float64
	VariantRateID       string `gorm:"type:uuid;index"`
	DisplayRateID       string `gorm:"type:uuid"`
	ProductVariantID    string `gorm:"type:uuid;index"`
	ProductAssociateID  string `gorm:"type:uuid;index"`
	MediatorAssociateID string `gorm:"type:uuid"`
	StatusID            string `gorm:"type:uuid"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
}

type EnquiryProcessStatusModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex"`
}
