package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-coach/internal/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		_, err := NewRedisClient(context.Background(), config.RedisConfig{})
		assert.Error(t, err)
	})

	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewRedisClient(context.Background(), config.RedisConfig{Address: mr.Addr()})
		require.NoError(t, err)
		defer client.Close()
		assert.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		_, err := NewRedisClient(context.Background(), config.RedisConfig{Address: addr})
		assert.Error(t, err)
	})
}
