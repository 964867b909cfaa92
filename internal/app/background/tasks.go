package background

import (
	"context"
	"log"
	"time"

	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

type BackgroundTasks struct {
	RateUsecase   domain.VariantRateUsecase
	SweepInterval time.Duration
}

func NewBackgroundTasks(rateUC domain.VariantRateUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = time.Hour
	}
	return &BackgroundTasks{
		RateUsecase:   rateUC,
		SweepInterval: sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRateExpirySweep(ctx)
}

func (bt *BackgroundTasks) startRateExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.RateUsecase.DeactivateExpiredRates(ctx); err != nil {
				log.Printf("Rate expiry sweep error: %v\n", err)
			}
		}
	}
}
