package domain

import (
	"context"
	"time"

	activitydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/activity"
)

// Activity status names. These are static reference data seeded into the
// activity_status_models table; the deriver resolves them to ids on demand.
const (
	ActivityStatusNoTarget     = "No Target"
	ActivityStatusToBePlanned  = "To Be Planned"
	ActivityStatusToBeAssigned = "To Be Assigned"
	ActivityStatusSubmitted    = "Submitted"
	ActivityStatusApproved     = "Approved"
	ActivityStatusRejected     = "Rejected"
	ActivityStatusSuspended    = "Suspended"
	ActivityStatusBlocked      = "Blocked"
	ActivityStatusInProgress   = "In Progress"
)

// Activity is a unit of work under a Project. Status is a derived field except
// for the explicit terminal transitions accepted as direct input.
type Activity struct {
	ID                  string
	Title               string
	ProjectID           string
	ActivityManagerID   string
	CustomerID          string
	TypeID              string
	StatusID            string
	PreviousStatusID    string
	ForecastDate        *time.Time
	ActualDate          *time.Time
	TargetOperationDate *time.Time
	TargetFinanceDate   *time.Time
	HoursSpent          float64
	WorkerIDs           []string
	RejectionReasons    []string
	IsDeleted           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ActivityStatus struct {
	ID   string
	Name string
}

// ActivityUpdate is a partial update; nil fields are left untouched.
type ActivityUpdate struct {
	ActivityManagerID   *string
	CustomerID          *string
	TypeID              *string
	StatusID            *string
	PreviousStatusID    *string
	ForecastDate        *time.Time
	ActualDate          *time.Time
	TargetOperationDate *time.Time
	TargetFinanceDate   *time.Time
	HoursSpent          *float64
	WorkerIDs           []string
	RejectionReasons    []string
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, activityID string) (*Activity, error)
	Update(ctx context.Context, activityID string, update *ActivityUpdate) error
	ListByProjectID(ctx context.Context, projectID string) ([]*Activity, error)
	SoftDelete(ctx context.Context, activityID string) error
}

type ActivityStatusRepository interface {
	GetByName(ctx context.Context, name string) (*ActivityStatus, error)
	List(ctx context.Context) ([]*ActivityStatus, error)
}

// StatusCache memoizes status name to id lookups. Implementations must be safe
// for concurrent use; entries only ever grow, invalidation is not required.
type StatusCache interface {
	Get(name string) (string, bool)
	Set(name, id string)
}

type ActivityUsecase interface {
	CreateActivity(ctx context.Context, caller Identity, input *activitydto.CreateActivityInput) (*Activity, error)
	GetActivityByID(ctx context.Context, activityID string) (*Activity, error)
	UpdateActivity(ctx context.Context, caller Identity, activityID string, input *activitydto.UpdateActivityInput) (*Activity, error)
	DeleteActivity(ctx context.Context, caller Identity, activityID string) error
}
