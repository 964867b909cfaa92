package models

import (
	"time"

	"github.com/lib/pq"
)

type ActivityModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Title               string `gorm:"uniqueIndex"`
	ProjectID           string `gorm:"type:uuid;index"`
	ActivityManagerID   string `gorm:"type:uuid"`
	CustomerID          string `gorm:"type:uuid"`
	TypeID              string `gorm:"type:uuid"`
	StatusID            string `gorm:"type:uuid;index"`
	PreviousStatusID    string `gorm:"type:uuid"`
	ForecastDate        *time.Time
	ActualDate          *time.Time
	TargetOperationDate *time.Time
	TargetFinanceDate   *time.Time
	HoursSpent          float64
	WorkerIDs           pq.StringArray `gorm:"type:text[]"`
	RejectionReasons    pq.StringArray `gorm:"type:text[]"`
	IsDeleted           bool `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ActivityStatusModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex"`
}

type ProjectModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Title      string
	CustomerID string `gorm:"type:uuid"`
	StatusID   string `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProjectStatusModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"uniqueIndex"`
}
