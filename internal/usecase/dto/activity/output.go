package activitydto

import "time"

type ActivityOutput struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	ProjectID           string     `json:"project_id"`
	ActivityManagerID   string     `json:"activity_manager_id,omitempty"`
	CustomerID          string     `json:"customer_id,omitempty"`
	TypeID              string     `json:"type_id,omitempty"`
	StatusID            string     `json:"status_id"`
	PreviousStatusID    string     `json:"previous_status_id,omitempty"`
	ForecastDate        *time.Time `json:"forecast_date,omitempty"`
	ActualDate          *time.Time `json:"actual_date,omitempty"`
	TargetOperationDate *time.Time `json:"target_operation_date,omitempty"`
	TargetFinanceDate   *time.Time `json:"target_finance_date,omitempty"`
	HoursSpent          float64    `json:"hours_spent"`
	WorkerIDs           []string   `json:"worker_ids,omitempty"`
	RejectionReasons    []string   `json:"rejection_reasons,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
