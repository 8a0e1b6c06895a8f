package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/citylib/library-api/internal/models"
)

// SchemaMigration records one applied migration. Migrations only ever move
// forward: once an id is recorded it is never re-run or rolled back.
type SchemaMigration struct {
	ID        string `gorm:"primaryKey;size:50"`
	AppliedAt time.Time
}

type migration struct {
	id  string
	run func(tx *gorm.DB) error
}

var migrations = []migration{
	{
		id: "001_core_tables",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&models.User{},
				&models.Book{},
				&models.Borrowing{},
				&models.Payment{},
			)
		},
	},
	{
		// The payments table predates the payment_method/status columns;
		// older databases get them here.
		id: "002_payment_method_status",
		run: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if !m.HasColumn(&models.Payment{}, "payment_method") {
				if err := m.AddColumn(&models.Payment{}, "payment_method"); err != nil {
					return err
				}
			}
			if !m.HasColumn(&models.Payment{}, "status") {
				if err := m.AddColumn(&models.Payment{}, "status"); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// Migrate applies every pending migration in order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).
			Where("id = ?", m.id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %s: %w", m.id, err)
		}

		rec := SchemaMigration{ID: m.id, AppliedAt: time.Now()}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}

		logrus.WithField("migration", m.id).Info("schema migration applied")
	}

	return nil
}
