package postgres

import (
	"log"

	"github.com/yoxaz-verse/obaol-rate-service/internal/config"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/logger"
	"github.com/yoxaz-verse/obaol-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RateConfig) *gorm.DB {
	dsn := cfg.RateDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.AssociateCompanyModel{},
		&models.AssociateModel{},
		&models.ProductModel{},
		&models.SubCategoryModel{},
		&models.ProductVariantModel{},
		&models.VariantRateModel{},
		&models.DisplayedRateModel{},
		&models.EnquiryProcessStatusModel{},
		&models.EnquiryModel{},
		&models.ActivityStatusModel{},
		&models.ProjectStatusModel{},
		&models.ProjectModel{},
		&models.ActivityModel{},
		&logger.ErrorEvent{},
	)

	return db
}
