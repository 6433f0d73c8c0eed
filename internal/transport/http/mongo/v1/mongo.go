package http

import (
	"context"
	"net/http"

	"github.com/you-humble/mongo-probe/platform/logger"
)

const (
	successBody   = "MongoDB connection is successful!"
	failurePrefix = "MongoDB connection failed: "
)

type CheckService interface {
	CheckMongo(ctx context.Context) error
}

type handler struct {
	svc CheckService
}

func NewMongoHandler(service CheckService) *handler {
	return &handler{svc: service}
}

func (h *handler) CheckMongo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CheckMongo(r.Context()); err != nil {
		write(w, r, http.StatusInternalServerError, failurePrefix+err.Error())
		return
	}

	write(w, r, http.StatusOK, successBody)
}

func write(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error(r.Context(), "write check_mongo response", logger.ErrorF(err))
	}
}
