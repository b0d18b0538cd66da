package fx

import (
	"Seedfund/config"
	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/notification"
	"Seedfund/internal/domain/payment"
	"Seedfund/internal/domain/pledge"
	"Seedfund/internal/infrastructure"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newDonationService,
		newPledgeService,
		newNotifier,
		newPaymentService,
	),
)

func newDonationService(cfg *config.Config, repo *infrastructure.DonationRepository) *donation.Service {
	return donation.NewService(repo, cfg.Campaign.GoalAmount, cfg.Campaign.RecentLimit)
}

func newPledgeService(cfg *config.Config, repo *infrastructure.PledgeRepository) *pledge.Service {
	return pledge.NewService(repo, cfg.Campaign.Location())
}

func newNotifier() notification.Notifier {
	return notification.NewLogNotifier()
}

func newPaymentService(
	cfg *config.Config,
	donationSvc *donation.Service,
	notifier notification.Notifier,
) *payment.Service {
	return payment.NewService(payment.DefaultProviders(), donationSvc, notifier, cfg.Campaign.Currency)
}
