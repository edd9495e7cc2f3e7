package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/telecloudhq/telecloud/app/models"
	"github.com/telecloudhq/telecloud/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{
			// Duplicate-key and FK errors must come back as gorm.ErrDuplicatedKey /
			// gorm.ErrForeignKeyViolated so the repository taxonomy can classify them.
			TranslateError: true,
		})
		if err == nil {
			if err := Migrate(DB); err != nil {
				log.Error().Err(err).Msg("auto migration failed")
				panic(err)
			}
			return
		}

		log.Warn().Err(err).Int("try", i+1).Int("max", maxRetries).Msg("failed to connect to database")
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate applies the GORM schema for every entity. Order matters: referenced
// tables (users, folders, user_files) must exist before their dependents so
// the FK cascade constraints can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BotToken{},
		&models.Session{},
		&models.Account{},
		&models.Verification{},
		&models.Folder{},
		&models.UserFile{},
		&models.SharedFile{},
		&models.Payment{},
		&models.SupportTicket{},
	)
}
