package redis

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ds124wfegd/image-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	srv := miniredis.RunT(t)
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{Host: srv.Host(), Port: port})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewRedisClientUnreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	host := srv.Host()
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	srv.Close()

	_, err = NewRedisClient(context.Background(), &config.RedisConfig{Host: host, Port: port, MaxRetries: -1})
	assert.Error(t, err)
}
