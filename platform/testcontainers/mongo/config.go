package mongo

import (
	"context"

	"github.com/docker/docker/api/types/container"

	"github.com/you-humble/mongo-probe/platform/logger"
	tc "github.com/you-humble/mongo-probe/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	NetworkName   string
	NetworkAlias  string
	ContainerName string
	ImageName     string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	// Host and Port are the mapped address reachable from the test process.
	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		NetworkAlias: tc.MongoNetworkAlias,
		ImageName:    tc.MongoImage,
		Username:     "root",
		Password:     "root",
		AuthDB:       "admin",
		Logger:       &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
