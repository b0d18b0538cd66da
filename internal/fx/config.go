package fx

import (
	"log"

	"Seedfund/config"
	"Seedfund/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
	fx.Invoke(
		initLogger,
	),
)

// loadConfig reads .env files before parsing so they can feed config.Load.
func loadConfig() (*config.Config, error) {
	loadEnvFiles()
	return config.Load()
}

func loadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env from the working directory: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("warning: could not load ../../.env: %v", err)
	}
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
