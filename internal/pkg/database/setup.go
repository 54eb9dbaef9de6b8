package database

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ManuelReschke/visitas/app/models"
	"github.com/ManuelReschke/visitas/internal/pkg/config"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

func SetupDatabase(cfg config.Database) (*gorm.DB, error) {
	return setup(cfg, maxRetries, retryDelay)
}

func setup(cfg config.Database, retries int, delay time.Duration) (*gorm.DB, error) {
	var err error
	for i := 0; i < retries; i++ {
		var db *gorm.DB
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       cfg.DSN(), // data source name
			DefaultStringSize:         256,       // default size for string fields
			DisableDatetimePrecision:  true,      // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true,      // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,      // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false,     // auto configure based on currently MySQL version
		}), &gorm.Config{})
		if err == nil {
			if err := db.AutoMigrate(&models.Counter{}); err != nil {
				return nil, fmt.Errorf("failed to migrate counters: %w", err)
			}
			return db, nil
		}

		log.Warnf("Failed to connect to database (try %d/%d): %v", i+1, retries, err)
		if i < retries-1 {
			log.Infof("Retrying in %v...", delay)
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
