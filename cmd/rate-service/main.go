package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/yoxaz-verse/obaol-rate-service/internal/app/background"
	"github.com/yoxaz-verse/obaol-rate-service/internal/config"
	delivery "github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http"
	"github.com/yoxaz-verse/obaol-rate-service/internal/delivery/http/handlers"
	publisher "github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/kafka"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/metrics"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/migrate"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/repository"
	"github.com/yoxaz-verse/obaol-rate-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	// Seed status reference data
	if migrationPath := os.Getenv("RATE_MIGRATIONS_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(db, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	rateMetrics := metrics.NewRateMetrics()
	errLogger := logger.NewPGErrorEventLogger(db)

	// Init repos
	rateRepo := repository.NewDefaultVariantRateRepository(db)
	displayedRepo := repository.NewDefaultDisplayedRateRepository(db)
	enquiryRepo := repository.NewDefaultEnquiryRepository(db)
	enquiryStatusRepo := repository.NewDefaultEnquiryStatusRepository(db)
	activityRepo := repository.NewDefaultActivityRepository(db)
	activityStatusRepo := repository.NewDefaultActivityStatusRepository(db)
	projectRepo := repository.NewDefaultProjectRepository(db)
	projectStatusRepo := repository.NewDefaultProjectStatusRepository(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)

	// Init usecases
	rateUsecase := usecase.NewDefaultVariantRateUsecase(rateRepo, catalogRepo, pub, rateMetrics)
	if cfg.RateEngine.CoolingMinutes > 0 {
		rateUsecase.CoolingPeriod = time.Duration(cfg.RateEngine.CoolingMinutes) * time.Minute
	}
	displayedUsecase := usecase.NewDefaultDisplayedRateUsecase(displayedRepo, rateRepo, catalogRepo)
	enquiryUsecase := usecase.NewDefaultEnquiryUsecase(enquiryRepo, rateRepo, displayedRepo, enquiryStatusRepo, pub, rateMetrics)
	projectSync := usecase.NewDefaultProjectStatusUsecase(projectRepo, projectStatusRepo, activityRepo, activityStatusRepo, pub, rateMetrics)
	statusCache := usecase.NewMemoryStatusCache()
	activityUsecase := usecase.NewDefaultActivityUsecase(activityRepo, activityStatusRepo, statusCache, projectSync, rateMetrics)

	// Background rate expiry sweep
	sweepInterval := time.Duration(cfg.RateEngine.SweepIntervalHours) * time.Hour
	tasks := background.NewBackgroundTasks(rateUsecase, sweepInterval)
	tasks.StartAll(context.Background())

	router := delivery.NewRouter(delivery.Handlers{
		VariantRate:   handlers.NewVariantRateHandler(rateUsecase, errLogger),
		DisplayedRate: handlers.NewDisplayedRateHandler(displayedUsecase, errLogger),
		Enquiry:       handlers.NewEnquiryHandler(enquiryUsecase, errLogger),
		Activity:      handlers.NewActivityHandler(activityUsecase, errLogger),
		Project:       handlers.NewProjectHandler(projectSync, errLogger),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
