// Package cache caché de lectura del catálogo sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/ferreteria-api/pkg/logger"
)

var _ usecase.ProductCache = (*ProductCache)(nil)

const keyPrefix = "ferreteria:producto:"

// NewRedis abre el cliente y valida la conexión al arrancar.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// ProductCache guarda ProductResponse serializado en JSON con TTL.
// Un fallo de Redis se registra y se trata como miss.
type ProductCache struct {
	rdb redis.Cmdable
	ttl time.Duration
	log *logger.Logger
}

// NewProductCache construye la caché.
func NewProductCache(rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *ProductCache {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductCache{rdb: rdb, ttl: ttl, log: log.Component("cache")}
}

func (c *ProductCache) Get(ctx context.Context, id string) (*dto.ProductResponse, bool) {
	raw, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("product_id", id).Msg("redis get")
		}
		return nil, false
	}
	var p dto.ProductResponse
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("entrada de caché corrupta")
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *dto.ProductResponse) {
	if p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productKey(p.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", p.ID).Msg("redis set")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, productKey(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("redis del")
	}
}

func productKey(id string) string { return keyPrefix + id }
