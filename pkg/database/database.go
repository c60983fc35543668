package database

import (
	"fmt"
	"os"
	"path/filepath"
	"recruit_backend/internal/config"
	"recruit_backend/internal/model"
	"recruit_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database without migrating it.
func Open(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if mode == "debug" {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
				return nil, err
			}
		}
		db, err := gorm.Open(sqlite.Open(cfg.Path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"), gormCfg)
		if err != nil {
			return nil, err
		}
		// SQLite has a single writer; one connection keeps transactions from
		// tripping over each other.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Migrate creates or updates the assessment tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Question{},
		&model.Assessment{},
		&model.Response{},
	)
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		logger.Log.Info("Database migration completed")
	}

	return db, nil
}
