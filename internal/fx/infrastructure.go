package fx

import (
	"context"

	"Seedfund/config"
	"Seedfund/internal/infrastructure"
	"Seedfund/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newDonationRepository,
		newPledgeRepository,
	),
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			logger.Info().Msg("closing database connection")
			return sqlDB.Close()
		},
	})

	return db, nil
}

func newDonationRepository(db *gorm.DB) *infrastructure.DonationRepository {
	return &infrastructure.DonationRepository{DB: db}
}

func newPledgeRepository(db *gorm.DB) *infrastructure.PledgeRepository {
	return &infrastructure.PledgeRepository{DB: db}
}
