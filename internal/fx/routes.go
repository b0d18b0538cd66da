package fx

import (
	"context"

	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/payment"
	"Seedfund/internal/domain/pledge"
	"Seedfund/internal/routes"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	db *gorm.DB,
	donationSvc *donation.Service,
	pledgeSvc *pledge.Service,
	paymentSvc *payment.Service,
	verifier payment.Verifier,
) *routes.Handler {
	return &routes.Handler{
		DonationService: donationSvc,
		PledgeService:   pledgeSvc,
		PaymentService:  paymentSvc,
		WebhookVerifier: verifier,
		HealthCheck: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
