package fx

import (
	"context"

	"Seedfund/config"
	"Seedfund/internal/domain/payment"
	"Seedfund/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newRateLimiter,
		newWebhookVerifier,
	),
)

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}

func newWebhookVerifier(cfg *config.Config) payment.Verifier {
	return payment.NewVerifier(cfg.Payment.SignatureScheme, cfg.Payment.WebhookSecret)
}
