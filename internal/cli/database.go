package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/m04kA/SMC-PickupService/internal/config"
	"github.com/m04kA/SMC-PickupService/migrator"
	"github.com/m04kA/SMC-PickupService/pkg/logger"
)

const pingTimeout = 5 * time.Second

// bootstrap загружает конфигурацию и поднимает логгер
func bootstrap(opts *options) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

// openDatabase открывает пул соединений и проверяет доступность БД
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// SQLite не умеет параллельную запись
	if cfg.Driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// openAndMigrate открывает БД и, если нужно, применяет миграции
func openAndMigrate(cfg *config.Config, log *logger.Logger, migrate bool) (*sql.DB, error) {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverSQLite {
		log.Info("Connected to database (driver=%s, path=%s)", cfg.Database.Driver, cfg.Database.Path)
	} else {
		log.Info("Connected to database (driver=%s, host=%s, port=%d, db=%s)",
			cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	if migrate {
		if err := migrator.Migrate(db, cfg.Database.Driver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Migrations applied")
	}

	return db, nil
}
