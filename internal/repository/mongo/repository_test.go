package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Nothing listens on port 1, so server selection fails fast.
const unreachableURI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=300&connectTimeoutMS=300"

func newUnreachableClient(t *testing.T) *mongo.Client {
	t.Helper()

	client, err := mongo.Connect(options.Client().ApplyURI(unreachableURI))
	require.NoError(t, err, "connect must not dial synchronously")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	})

	return client
}

func TestPingUnreachable(t *testing.T) {
	t.Parallel()

	repo := NewPingRepository(newUnreachableClient(t).Database("admin"))

	err := repo.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "ping admin")
}

func TestPingHonoursContext(t *testing.T) {
	t.Parallel()

	repo := NewPingRepository(newUnreachableClient(t).Database("admin"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Ping(ctx)
	require.Error(t, err)
}

func TestConnectRejectsMalformedURI(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(options.Client().ApplyURI("postgres://not-mongo"))
	require.Error(t, err)
}
