package app

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/mongo-probe/platform/logger"
	tc "github.com/you-humble/mongo-probe/platform/testcontainers"
)

const (
	defaultAppName        = "mongo-probe"
	defaultStartupTimeout = 2 * time.Minute
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type Config struct {
	Name          string
	DockerfileDir string
	Dockerfile    string
	Port          string
	Env           map[string]string
	Networks      []string
	LogOutput     io.Writer
	Logger        Logger
}

type Container struct {
	container    testcontainers.Container
	externalHost string
	externalPort string
	cfg          *Config
}

// NewContainer builds the probe image and waits until GET / answers 200.
func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		Name:          defaultAppName,
		Port:          tc.AppPort,
		Dockerfile:    "Dockerfile",
		DockerfileDir: ".",
		LogOutput:     io.Discard,
		Env:           make(map[string]string),
		Logger:        &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if _, ok := cfg.Env[tc.ServerAddressKey]; !ok {
		cfg.Env[tc.ServerAddressKey] = net.JoinHostPort("0.0.0.0", cfg.Port)
	}

	startupWait := wait.ForHTTP("/").
		WithPort(nat.Port(cfg.Port + "/tcp")).
		WithStartupTimeout(defaultStartupTimeout)

	req := testcontainers.ContainerRequest{
		Name: cfg.Name,
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    cfg.DockerfileDir,
			Dockerfile: cfg.Dockerfile,
		},
		Networks:           cfg.Networks,
		Env:                cfg.Env,
		WaitingFor:         startupWait,
		ExposedPorts:       []string{cfg.Port + "/tcp"},
		HostConfigModifier: defaultHostConfig(),
	}

	genericContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start app container: %v", err)
	}

	mappedPort, err := genericContainer.MappedPort(ctx, nat.Port(cfg.Port+"/tcp"))
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}

	host, err := genericContainer.Host(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}

	go streamContainerLogs(ctx, genericContainer, cfg.LogOutput, cfg.Logger)

	cfg.Logger.Info(ctx, "App container started", logger.String("address", net.JoinHostPort(host, mappedPort.Port())))

	return &Container{
		container:    genericContainer,
		externalHost: host,
		externalPort: mappedPort.Port(),
		cfg:          cfg,
	}, nil
}

func (a *Container) Address() string {
	return net.JoinHostPort(a.externalHost, a.externalPort)
}

func (a *Container) BaseURL() string {
	return "http://" + a.Address()
}

func (a *Container) Terminate(ctx context.Context) error {
	return a.container.Terminate(ctx)
}

func streamContainerLogs(ctx context.Context, container testcontainers.Container, out io.Writer, l Logger) {
	logs, err := container.Logs(ctx)
	if err != nil {
		l.Error(ctx, "failed to get container logs", logger.ErrorF(err))
		return
	}
	defer func() {
		if err := logs.Close(); err != nil {
			l.Error(ctx, "failed to close container logs", logger.ErrorF(err))
		}
	}()

	if _, err := io.Copy(out, logs); err != nil && !errors.Is(err, io.EOF) {
		l.Error(ctx, "error copying container logs", logger.ErrorF(err))
	}
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
