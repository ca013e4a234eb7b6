package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis spins up a Redis container and returns its URL.
func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, container.Terminate(ctx)) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return "redis://" + host + ":" + port.Port()
}

func TestNoopLocker_Acquire(t *testing.T) {
	ok, err := cache.NoopLocker{}.Acquire(context.Background(), "any", time.Second)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewRedisLocker_InvalidURL(t *testing.T) {
	_, err := cache.NewRedisLocker("not a url", "replica-a")
	assert.Error(t, err)
}

func TestRedisLocker_Acquire(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	url := setupRedis(t)
	ctx := context.Background()

	first, err := cache.NewRedisLocker(url, "replica-a")
	require.NoError(t, err)
	defer first.Close()
	second, err := cache.NewRedisLocker(url, "replica-b")
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, first.Ping(ctx))

	ok, err := first.Acquire(ctx, "standup:fire:morning-checkin:1704110400", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx, "standup:fire:morning-checkin:1704110400", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second replica must not run the same firing")

	ok, err = second.Acquire(ctx, "standup:fire:afternoon-checkin:1704128400", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_Expiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	url := setupRedis(t)
	ctx := context.Background()

	locker, err := cache.NewRedisLocker(url, "replica-a")
	require.NoError(t, err)
	defer locker.Close()

	ok, err := locker.Acquire(ctx, "short", 500*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(time.Second)

	ok, err = locker.Acquire(ctx, "short", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
