package cache

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/pkg/logger"
)

func TestProductKey(t *testing.T) {
	assert.Equal(t, "ferreteria:producto:abc", productKey("abc"))
}

func TestNewRedis_URLInvalida(t *testing.T) {
	_, err := NewRedis(context.Background(), "no-es-una-url")
	assert.Error(t, err)
}

// Sin servidor disponible la caché degrada a miss y registra el error.
func TestProductCache_RedisCaido(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	var buf bytes.Buffer
	c := NewProductCache(rdb, time.Minute, logger.New(logger.Config{Env: "test", Level: "warn", Output: &buf}))
	ctx := context.Background()

	c.Set(ctx, &dto.ProductResponse{ID: "p-1"})
	_, ok := c.Get(ctx, "p-1")
	assert.False(t, ok)
	c.Invalidate(ctx, "p-1")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"component":"cache"`)
}
