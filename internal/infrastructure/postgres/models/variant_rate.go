package models

import (
	"time"

	"github.com/lib/pq"
)

type VariantRateModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	ProductVariantID   string `gorm:"type:uuid;index"`
	AssociateID        string `gorm:"type:uuid;index"`
	AssociateCompanyID string `gorm:"type:uuid;index"`
	Rate               float64
	Commission         float64
	DurationDays       int
	IsLive             bool `gorm:"index:idx_live_window"`
	Selected           bool
	Tags               pq.StringArray `gorm:"type:text[]"`
	StateID            string
	DistrictID         string
	DivisionID         string
	PincodeEntryID     string
	HiddenDraftOfID    string `gorm:"type:uuid"`
	LastEditTime       *time.Time
	CoolingStartTime   *time.Time
	LastLiveAt         *time.Time `gorm:"index:idx_live_window"`
	CreatedAt          time.Time  `gorm:"index"`
	UpdatedAt          time.Time
}

type DisplayedRateModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	VariantRateID      string `gorm:"type:uuid;index"`
	VariantRate        VariantRateModel `gorm:"foreignKey:VariantRateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AssociateID        string `gorm:"type:uuid;index"`
	AssociateCompanyID string `gorm:"type:uuid;index"`
	Commission         float64
	Selected           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
