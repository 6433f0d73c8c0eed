package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/mongo-probe/internal/config"
	repository "github.com/you-humble/mongo-probe/internal/repository/mongo"
	service "github.com/you-humble/mongo-probe/internal/service/check"
	thttp "github.com/you-humble/mongo-probe/internal/transport/http/mongo/v1"
	"github.com/you-humble/mongo-probe/internal/transport/http/router"
	"github.com/you-humble/mongo-probe/platform/closer"
)

type di struct {
	mongo *mongo.Client

	pinger  service.Pinger
	service thttp.CheckService
	handler router.MongoHandler

	router   *chi.Mux
	listener net.Listener
	server   *http.Server
}

func NewDI() *di { return &di{} }

// MongoDB builds the client without contacting the server: an unreachable
// database must not stop the process from serving.
func (d *di) MongoDB(_ context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(config.C().Mongo.URI()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Pinger(ctx context.Context) service.Pinger {
	if d.pinger == nil {
		d.pinger = repository.NewPingRepository(
			d.MongoDB(ctx).Database(config.C().Mongo.AdminDatabase()),
		)
	}

	return d.pinger
}

func (d *di) CheckService(ctx context.Context) thttp.CheckService {
	if d.service == nil {
		d.service = service.NewCheckService(d.Pinger(ctx))
	}

	return d.service
}

func (d *di) MongoHandler(ctx context.Context) router.MongoHandler {
	if d.handler == nil {
		d.handler = thttp.NewMongoHandler(d.CheckService(ctx))
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = router.New(d.MongoHandler(ctx))
	}

	return d.router
}

func (d *di) Listener(_ context.Context) (net.Listener, error) {
	if d.listener == nil {
		addr := config.C().Server.Address()

		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("listen %s: %w", addr, err)
		}
		closer.AddNamed("Listener",
			func(ctx context.Context) error {
				if err := lis.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
					return err
				}
				return nil
			})

		d.listener = lis
	}

	return d.listener, nil
}

func (d *di) HTTPServer(ctx context.Context) *http.Server {
	if d.server == nil {
		srv := &http.Server{
			Addr:              config.C().Server.Address(),
			Handler:           d.Router(ctx),
			ReadHeaderTimeout: config.C().Server.ReadHeaderTimeout(),
		}
		closer.AddNamed("HTTP Server", srv.Shutdown)

		d.server = srv
	}

	return d.server
}
