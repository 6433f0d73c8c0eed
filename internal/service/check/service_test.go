package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/mongo-probe/internal/service/mocks"
)

func TestServiceCheckMongo(t *testing.T) {
	t.Parallel()

	type deps struct {
		pinger *mocks.MockPinger
	}

	newSvc := func(d deps) *service {
		return NewCheckService(d.pinger)
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	pingErr := errors.New(gofakeit.Sentence(6))

	tests := []testCase{
		{
			name: "success: ping answered",
			setup: func(d deps) {
				d.pinger.
					On("Ping", mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)
			},
		},
		{
			name: "failure: ping error returned unchanged",
			setup: func(d deps) {
				d.pinger.
					On("Ping", mock.Anything).
					Return(pingErr).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, pingErr)
				assert.Equal(t, pingErr.Error(), err.Error())
			},
		},
		{
			name: "failure: context error is propagated",
			setup: func(d deps) {
				d.pinger.EXPECT().
					Ping(mock.Anything).
					RunAndReturn(func(ctx context.Context) error {
						return context.DeadlineExceeded
					}).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				pinger: mocks.NewMockPinger(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			err := svc.CheckMongo(context.Background())
			tt.assert(t, err, d)
		})
	}
}
