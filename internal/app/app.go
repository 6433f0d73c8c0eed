package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/mongo-probe/internal/config"
	"github.com/you-humble/mongo-probe/platform/closer"
	"github.com/you-humble/mongo-probe/platform/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type app struct {
	di       *di
	listener net.Listener
	server   *http.Server
}

// New loads configuration, builds the Mongo client and binds the listener.
// A malformed MONGODB_URI panics: there is nothing sensible to serve without it.
func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		gracefulShutdown()
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

// Addr is the address the listener is actually bound to.
func (a *app) Addr() net.Addr { return a.listener.Addr() }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initMongo,
		a.initListener,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initMongo(ctx context.Context) error {
	a.di.MongoDB(ctx)
	return nil
}

func (a *app) initListener(ctx context.Context) error {
	lis, err := a.di.Listener(ctx)
	if err != nil {
		logger.Error(ctx, "failed to bind", logger.ErrorF(err))
		return err
	}

	a.listener = lis
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	a.server = a.di.HTTPServer(ctx)
	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 mongo probe listening",
			logger.String("address", a.listener.Addr().String()),
		)
		err := a.server.Serve(a.listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(context.Background(), "🛑 Server shutdown...")
		gracefulShutdown()
		return nil
	})

	return eg.Wait()
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		shutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}

func shutdownTimeout() time.Duration {
	if c := config.C(); c != nil && c.Server.ShutdownTimeout() > 0 {
		return c.Server.ShutdownTimeout()
	}
	return defaultShutdownTimeout
}
