package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/mongo-probe/internal/transport/http/mocks"
)

func TestHandlerCheckMongo(t *testing.T) {
	t.Parallel()

	type deps struct {
		svc *mocks.MockCheckService
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "success: 200 with fixed body",
			setup: func(d deps) {
				d.svc.
					On("CheckMongo", mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "MongoDB connection is successful!", rec.Body.String())
			},
		},
		{
			name: "failure: 500 with error text",
			setup: func(d deps) {
				d.svc.
					On("CheckMongo", mock.Anything).
					Return(errors.New("ping admin: server selection error: connection refused")).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t,
					"MongoDB connection failed: ping admin: server selection error: connection refused",
					rec.Body.String(),
				)
			},
		},
		{
			name: "failure: auth and timeout errors are not distinguished",
			setup: func(d deps) {
				d.svc.
					On("CheckMongo", mock.Anything).
					Return(context.DeadlineExceeded).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				body := rec.Body.String()
				require.True(t, strings.HasPrefix(body, "MongoDB connection failed: "))
				assert.NotEmpty(t, strings.TrimPrefix(body, "MongoDB connection failed: "))
			},
		},
		{
			name: "request context reaches the service",
			setup: func(d deps) {
				d.svc.EXPECT().
					CheckMongo(mock.MatchedBy(func(ctx context.Context) bool {
						return ctx.Value(ctxMarker{}) == "marked"
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{svc: mocks.NewMockCheckService(t)}
			tt.setup(d)

			req := httptest.NewRequest(http.MethodGet, "/check_mongo", nil)
			req = req.WithContext(context.WithValue(req.Context(), ctxMarker{}, "marked"))
			rec := httptest.NewRecorder()

			NewMongoHandler(d.svc).CheckMongo(rec, req)

			tt.assert(t, rec)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

type ctxMarker struct{}
