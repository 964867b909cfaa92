package activitydto

import "time"

type CreateActivityInput struct {
	ProjectID           string
	ActivityManagerID   string
	CustomerID          string
	TypeID              string
	Status              string
	ForecastDate        *time.Time
	ActualDate          *time.Time
	TargetOperationDate *time.Time
	TargetFinanceDate   *time.Time
	HoursSpent          float64
	WorkerIDs           []string
	RejectionReasons    []string
}

// UpdateActivityInput is a partial patch merged over the stored activity
// before status derivation. Status carries a terminal transition label
// (Submitted/Approved/Rejected/Suspended/Blocked); Unblock asks an admin to
// restore the previously stored status.
type UpdateActivityInput struct {
	ActivityManagerID   *string
	CustomerID          *string
	TypeID              *string
	Status              string
	Unblock             bool
	ForecastDate        *time.Time
	ActualDate          *time.Time
	TargetOperationDate *time.Time
	TargetFinanceDate   *time.Time
	HoursSpent          *float64
	WorkerIDs           []string
	RejectionReasons    []string
}
