package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/mongo-probe/internal/transport/http/health"
	"github.com/you-humble/mongo-probe/internal/transport/http/middleware"
)

type MongoHandler interface {
	CheckMongo(w http.ResponseWriter, r *http.Request)
}

// New builds the whole HTTP surface of the service.
func New(mongoHandler MongoHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Logging,
		chimw.Recoverer,
	)

	r.Get("/", health.HealthCheck)
	r.Get("/check_mongo", mongoHandler.CheckMongo)

	return r
}
