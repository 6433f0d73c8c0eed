package health

import (
	"net/http"

	"github.com/you-humble/mongo-probe/platform/logger"
)

const body = "Server is running!"

// HealthCheck is the liveness probe. It never touches the database.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
