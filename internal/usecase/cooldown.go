package usecase

import (
	"time"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

// DefaultCoolingPeriod is the window after an edit during which follow-up
// edits are treated as provisional drafts.
const DefaultCoolingPeriod = 15 * time.Minute

// EditDecision is the outcome of the rate edit-cooldown state machine.
type EditDecision struct {
	Allowed     bool
	CoolingEdit bool
	NextEditAt  time.Time
}

// DecideRateEdit evaluates the edit-cooldown rules against now, in order:
//
//  1. never edited before: allowed, starts a cycle
//  2. still inside the cooling window: allowed as a cooling (draft) edit
//  3. the full duration cycle has elapsed since the last substantive edit:
//     allowed, starts a new cycle
//  4. otherwise rejected; NextEditAt reports when rule 3 will pass
//
// Admin bypass is the caller's concern, not this function's. The surrounding
// read-then-write is best-effort: two concurrent edits can both pass here.
func DecideRateEdit(rate *domain.VariantRate, now time.Time, coolingPeriod time.Duration) EditDecision {
	if coolingPeriod <= 0 {
		coolingPeriod = DefaultCoolingPeriod
	}

	if rate.LastEditTime == nil {
		return EditDecision{Allowed: true}
	}
	if rate.CoolingStartTime != nil && now.Sub(*rate.CoolingStartTime) <= coolingPeriod {
		return EditDecision{Allowed: true, CoolingEdit: true}
	}
	if now.Sub(*rate.LastEditTime) >= rate.Duration() {
		return EditDecision{Allowed: true}
	}
	return EditDecision{NextEditAt: rate.LastEditTime.Add(rate.Duration())}
}
