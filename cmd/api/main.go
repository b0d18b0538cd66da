package main

import (
	appfx "Seedfund/internal/fx"

	"go.uber.org/fx"
)

// @title Seedfund API
// @version 1.0
// @description Donation campaign API: donations, pledges, tiers, campaign stats and mock payments.
// @BasePath /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
