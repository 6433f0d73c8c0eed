package service

import (
	"context"
	"time"

	"github.com/you-humble/mongo-probe/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type service struct {
	pinger Pinger
}

func NewCheckService(pinger Pinger) *service {
	return &service{pinger: pinger}
}

// CheckMongo reports whether the database answered a ping. Every failure
// cause is returned as is; callers do not distinguish between them.
func (s *service) CheckMongo(ctx context.Context) error {
	const op = "check.service.CheckMongo"

	start := time.Now()
	if err := s.pinger.Ping(ctx); err != nil {
		logger.Error(ctx, "mongo ping failed",
			logger.String("op", op),
			logger.Duration("elapsed", time.Since(start)),
			logger.ErrorF(err),
		)
		return err
	}

	logger.Debug(ctx, "mongo ping ok",
		logger.String("op", op),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}
