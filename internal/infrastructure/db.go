package infrastructure

import (
	"context"
	"fmt"

	"Seedfund/config"
	"Seedfund/internal/logger"

	"github.com/cenkalti/backoff/v5"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDb opens the configured database, retrying the first ping until
// Database.ConnectTimeout runs out, then migrates the schema.
func NewDb(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(&cfg.Database)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	ctx := context.Background()
	if cfg.Database.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()
	}

	attempt := 0
	operation := func() (*gorm.DB, error) {
		attempt++
		db, err := gorm.Open(dialector, gormCfg)
		if err != nil {
			logger.Warn().Err(err).Int("attempt", attempt).Msg("database not reachable yet")
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			logger.Warn().Err(err).Int("attempt", attempt).Msg("database not reachable yet")
			return nil, err
		}
		return db, nil
	}

	db, err := backoff.Retry(ctx, operation, backoff.WithBackOff(backoff.NewExponentialBackOff()))
	if err != nil {
		logger.Error().
			Err(err).
			Str("driver", cfg.Database.Driver).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to get database handle")
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		// sqlite serialises writers; one connection keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("database", cfg.Database.DBName).
		Int("attempts", attempt).
		Msg("database connection established")

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// RunMigrations creates or updates the donations and pledges tables.
func RunMigrations(db *gorm.DB) error {
	logger.Info().Msg("running migrations")

	entities := []struct {
		name  string
		model interface{}
	}{
		{donationsTable, &donationDB{}},
		{pledgesTable, &pledgeDB{}},
	}

	for _, entity := range entities {
		if err := db.Table(entity.name).AutoMigrate(entity.model); err != nil {
			logger.Error().
				Err(err).
				Str("table", entity.name).
				Msg("failed to migrate table")
			return err
		}
	}

	logger.Info().Msg("migrations finished")
	return nil
}
