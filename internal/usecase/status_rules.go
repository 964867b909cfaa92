package usecase

import (
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
	activitydto "github.com/yoxaz-verse/obaol-rate-service/internal/usecase/dto/activity"
)

// statusContext is the merged view an activity status derivation runs against:
// on update the stored activity's fields with the incoming patch applied on
// top, plus the raw transition request from the payload.
type statusContext struct {
	merged    *domain.Activity
	requested string // incoming status label, not yet resolved to an id
	unblock   bool
	role      domain.Role
}

// statusOutcome names the derived status. UsePrevious restores the activity's
// stored previousStatus id instead of resolving a label.
type statusOutcome struct {
	label       string
	usePrevious bool
}

type statusRule struct {
	matches func(sc statusContext) bool
	outcome statusOutcome
}

var terminalStatusLabels = map[string]bool{
	domain.ActivityStatusSubmitted: true,
	domain.ActivityStatusApproved:  true,
	domain.ActivityStatusRejected:  true,
	domain.ActivityStatusSuspended: true,
	domain.ActivityStatusBlocked:   true,
}

// activityStatusRules is a priority-ordered decision list; the first matching
// rule wins, so an activity without a target operation date derives "No
// Target" no matter what else the payload carries.
var activityStatusRules = []statusRule{
	{
		matches: func(sc statusContext) bool { return sc.merged.TargetOperationDate == nil },
		outcome: statusOutcome{label: domain.ActivityStatusNoTarget},
	},
	{
		matches: func(sc statusContext) bool { return sc.merged.ForecastDate == nil },
		outcome: statusOutcome{label: domain.ActivityStatusToBePlanned},
	},
	{
		matches: func(sc statusContext) bool { return len(sc.merged.WorkerIDs) == 0 },
		outcome: statusOutcome{label: domain.ActivityStatusToBeAssigned},
	},
	{
		matches: func(sc statusContext) bool { return terminalStatusLabels[sc.requested] },
		outcome: statusOutcome{}, // resolved from sc.requested below
	},
	{
		matches: func(sc statusContext) bool { return sc.role == domain.RoleAdmin && sc.unblock },
		outcome: statusOutcome{usePrevious: true},
	},
	{
		matches: func(sc statusContext) bool { return true },
		outcome: statusOutcome{label: domain.ActivityStatusInProgress},
	},
}

// deriveActivityStatus walks the rule list top to bottom and returns the first
// matching outcome.
func deriveActivityStatus(sc statusContext) statusOutcome {
	for _, rule := range activityStatusRules {
		if !rule.matches(sc) {
			continue
		}
		out := rule.outcome
		if out.label == "" && !out.usePrevious {
			out.label = sc.requested
		}
		return out
	}
	return statusOutcome{label: domain.ActivityStatusInProgress}
}

// mergeActivity overlays a partial patch onto the stored activity field by
// field, so a partial update is evaluated against full context.
func mergeActivity(current *domain.Activity, input *activitydto.UpdateActivityInput) *domain.Activity {
	merged := *current
	if input.ActivityManagerID != nil {
		merged.ActivityManagerID = *input.ActivityManagerID
	}
	if input.CustomerID != nil {
		merged.CustomerID = *input.CustomerID
	}
	if input.TypeID != nil {
		merged.TypeID = *input.TypeID
	}
	if input.ForecastDate != nil {
		merged.ForecastDate = input.ForecastDate
	}
	if input.ActualDate != nil {
		merged.ActualDate = input.ActualDate
	}
	if input.TargetOperationDate != nil {
		merged.TargetOperationDate = input.TargetOperationDate
	}
	if input.TargetFinanceDate != nil {
		merged.TargetFinanceDate = input.TargetFinanceDate
	}
	if input.HoursSpent != nil {
		merged.HoursSpent = *input.HoursSpent
	}
	if input.WorkerIDs != nil {
		merged.WorkerIDs = input.WorkerIDs
	}
	if input.RejectionReasons != nil {
		merged.RejectionReasons = input.RejectionReasons
	}
	return &merged
}
