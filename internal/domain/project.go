package domain

import (
	"context"
	"time"
)

// Project status names derived from the statuses of the project's activities.
const (
	ProjectStatusOpen      = "Open"
	ProjectStatusClosed    = "Closed"
	ProjectStatusSuspended = "Suspended"
	ProjectStatusBlocked   = "Blocked"
)

type Project struct {
	ID         string
	Title      string
	CustomerID string
	StatusID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProjectStatus struct {
	ID   string
	Name string
}

type ProjectRepository interface {
	GetByID(ctx context.Context, projectID string) (*Project, error)
	UpdateStatus(ctx context.Context, projectID, statusID string) error
}

type ProjectStatusRepository interface {
	GetByName(ctx context.Context, name string) (*ProjectStatus, error)
}

type ProjectStatusUsecase interface {
	// SyncProjectStatus re-derives the status of the project owning the given
	// activity from the statuses of all of that project's activities.
	SyncProjectStatus(ctx context.Context, activityID string) error
	GetProjectByID(ctx context.Context, projectID string) (*Project, error)
}
