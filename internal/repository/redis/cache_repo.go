package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/catalog-live/internal/cfg"
	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/pkg/clients"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/DRSN-tech/catalog-live/pkg/jitter"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const productListKey = "productos:lista"

// CacheRepo caches the full product listing. Every failure here is logged
// and treated as a miss: the cache degrades to the primary store, never the
// other way around.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProductList returns the cached listing and whether it was warm.
func (c *CacheRepo) GetProductList(ctx context.Context) ([]domain.Product, bool) {
	data, err := c.client.Client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, false
	}

	return products, true
}

// SetProductList caches the listing with a jittered TTL, so refills from
// concurrent readers do not all expire in the same instant.
func (c *CacheRepo) SetProductList(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warnf("Failed to marshal product list for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	ttl := jitter.Duration(c.cfg.ListTTL, jitter.DefaultJitter)
	if err := c.client.Client.Set(ctx, productListKey, data, ttl).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateProductList drops the cached listing after a catalog mutation.
func (c *CacheRepo) InvalidateProductList(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, productListKey).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
