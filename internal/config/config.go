package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/mongo-probe/internal/config/env"
	"github.com/you-humble/mongo-probe/platform/logger"
)

var cfg *config

type config struct {
	Server Server
	Logger Logger
	Mongo  Database
}

// Load reads .env (or the given files) if present, then the process environment.
// Variables already set in the environment win over the file. A .env that cannot
// be parsed is logged and skipped.
func Load(path ...string) error {
	const op = "config.Load"

	if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn(context.Background(), "skipping unreadable .env",
			logger.String("op", op),
			logger.ErrorF(err),
		)
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	cfg = &config{
		Server: serverCfg,
		Logger: loggerCfg,
		Mongo:  mongoCfg,
	}

	return nil
}

func C() *config { return cfg }
