package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

func TestDecideRateEdit(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first edit is allowed and not cooling", func(t *testing.T) {
		rate := &domain.VariantRate{DurationDays: 1}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.True(t, decision.Allowed)
		require.False(t, decision.CoolingEdit)
	})

	t.Run("edit inside the cooling window is a cooling edit", func(t *testing.T) {
		edited := now.Add(-10 * time.Minute)
		rate := &domain.VariantRate{DurationDays: 1, LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.True(t, decision.Allowed)
		require.True(t, decision.CoolingEdit)
	})

	t.Run("edit exactly at the window boundary is still cooling", func(t *testing.T) {
		edited := now.Add(-DefaultCoolingPeriod)
		rate := &domain.VariantRate{DurationDays: 1, LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.True(t, decision.Allowed)
		require.True(t, decision.CoolingEdit)
	})

	t.Run("edit after a full duration cycle starts a new cycle", func(t *testing.T) {
		edited := now.Add(-25 * time.Hour)
		rate := &domain.VariantRate{DurationDays: 1, LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.True(t, decision.Allowed)
		require.False(t, decision.CoolingEdit)
	})

	t.Run("edit between cooling window and cycle end is rejected", func(t *testing.T) {
		edited := now.Add(-2 * time.Hour)
		rate := &domain.VariantRate{DurationDays: 1, LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.False(t, decision.Allowed)
		require.Equal(t, edited.Add(24*time.Hour), decision.NextEditAt)
	})

	t.Run("zero durationDays falls back to one day", func(t *testing.T) {
		edited := now.Add(-2 * time.Hour)
		rate := &domain.VariantRate{LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.False(t, decision.Allowed)
		require.Equal(t, edited.Add(24*time.Hour), decision.NextEditAt)
	})

	t.Run("longer duration keeps the lock past one day", func(t *testing.T) {
		edited := now.Add(-30 * time.Hour)
		rate := &domain.VariantRate{DurationDays: 3, LastEditTime: &edited, CoolingStartTime: &edited}
		decision := DecideRateEdit(rate, now, DefaultCoolingPeriod)
		require.False(t, decision.Allowed)
	})
}
