package mongo

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	tc "github.com/you-humble/mongo-probe/platform/testcontainers"
)

func startMongoContainer(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			mongoEnvUsernameKey: cfg.Username,
			mongoEnvPasswordKey: cfg.Password,
		},
		ExposedPorts:       []string{tc.MongoPort + "/tcp"},
		WaitingFor:         wait.ForListeningPort(tc.MongoPort + "/tcp").WithStartupTimeout(mongoStartupTimeout),
		HostConfigModifier: defaultHostConfig(),
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{
			cfg.NetworkName: {cfg.NetworkAlias},
		}
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start mongo container: %v", err)
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container testcontainers.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", errors.Errorf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, tc.MongoPort+"/tcp")
	if err != nil {
		return "", "", errors.Errorf("failed to get mapped port: %v", err)
	}

	return host, port.Port(), nil
}

func buildMongoURI(cfg *Config, hostport string) string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s/?authSource=%s",
		cfg.Username,
		cfg.Password,
		hostport,
		cfg.AuthDB,
	)
}

func externalURI(cfg *Config) string {
	return buildMongoURI(cfg, net.JoinHostPort(cfg.Host, cfg.Port))
}

func internalURI(cfg *Config) string {
	return buildMongoURI(cfg, net.JoinHostPort(cfg.NetworkAlias, tc.MongoPort))
}
