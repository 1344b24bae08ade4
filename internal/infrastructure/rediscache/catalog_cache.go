package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var _ catalog.Cache = (*CatalogCache)(nil)

const companiesKey = "catalog:companies"

// CatalogCache caché Redis del catálogo: compañías globales, planes y
// promociones por ámbito comercial.
type CatalogCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewCatalogCache construye la caché con un cliente compartido.
func NewCatalogCache(client *redis.Client, log *logger.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

func plansKey(scopeKey string) string  { return "catalog:plans:" + scopeKey }
func promosKey(scopeKey string) string { return "catalog:promotions:" + scopeKey }

// GetCompanies devuelve la lista cacheada de compañías.
func (c *CatalogCache) GetCompanies(ctx context.Context) ([]entity.Company, bool) {
	var items []entity.Company
	return items, c.get(ctx, companiesKey, &items)
}

// SetCompanies cachea la lista de compañías.
func (c *CatalogCache) SetCompanies(ctx context.Context, items []entity.Company, ttl time.Duration) {
	c.set(ctx, companiesKey, items, ttl)
}

// GetPlans devuelve los planes cacheados del scope.
func (c *CatalogCache) GetPlans(ctx context.Context, scopeKey string) ([]entity.Plan, bool) {
	var items []entity.Plan
	return items, c.get(ctx, plansKey(scopeKey), &items)
}

// SetPlans cachea los planes del scope.
func (c *CatalogCache) SetPlans(ctx context.Context, scopeKey string, items []entity.Plan, ttl time.Duration) {
	c.set(ctx, plansKey(scopeKey), items, ttl)
}

// GetPromotions devuelve las promociones cacheadas del scope.
func (c *CatalogCache) GetPromotions(ctx context.Context, scopeKey string) ([]entity.Promotion, bool) {
	var items []entity.Promotion
	return items, c.get(ctx, promosKey(scopeKey), &items)
}

// SetPromotions cachea las promociones del scope.
func (c *CatalogCache) SetPromotions(ctx context.Context, scopeKey string, items []entity.Promotion, ttl time.Duration) {
	c.set(ctx, promosKey(scopeKey), items, ttl)
}

// InvalidateScope borra planes y promociones del scope. La lista de
// compañías no se toca.
func (c *CatalogCache) InvalidateScope(ctx context.Context, scopeKey string) {
	if err := c.client.Del(ctx, plansKey(scopeKey), promosKey(scopeKey)).Err(); err != nil {
		c.log.Warn().Err(err).Str("scope", scopeKey).Msg("redis: invalidación de scope fallida")
	}
}

// get deserializa la entrada en dest; cualquier fallo cuenta como miss.
func (c *CatalogCache) get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("redis: lectura de caché fallida")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: entrada corrupta, descartando")
		_ = c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: serialización fallida")
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg(fmt.Sprintf("redis: escritura de caché fallida (ttl %s)", ttl))
	}
}
