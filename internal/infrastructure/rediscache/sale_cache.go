package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/internal/application/alta"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/application/sale"
	"github.com/jhoicas/Altas-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var (
	_ sale.ListingCache           = (*SaleListingCache)(nil)
	_ alta.SaleListingInvalidator = (*SaleListingCache)(nil)
)

const saleListPrefix = "sales:list:"
const scanBatchSize = 100

// SaleListingCache caché Redis de páginas del listado de ventas. Un alta
// nueva invalida todas las páginas.
type SaleListingCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewSaleListingCache construye la caché con un cliente compartido.
func NewSaleListingCache(client *redis.Client, log *logger.Logger) *SaleListingCache {
	return &SaleListingCache{client: client, log: log}
}

func listKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", saleListPrefix, limit, offset)
}

// GetList devuelve la página cacheada; cualquier fallo cuenta como miss.
func (c *SaleListingCache) GetList(ctx context.Context, limit, offset int) (*dto.SaleListResponse, bool) {
	key := listKey(limit, offset)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("redis: lectura de listado fallida")
		}
		return nil, false
	}
	var resp dto.SaleListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: listado corrupto, descartando")
		_ = c.client.Del(ctx, key)
		return nil, false
	}
	return &resp, true
}

// SetList cachea una página del listado.
func (c *SaleListingCache) SetList(ctx context.Context, limit, offset int, resp *dto.SaleListResponse, ttl time.Duration) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.log.Warn().Err(err).Msg("redis: serialización de listado fallida")
		return
	}
	if err := c.client.Set(ctx, listKey(limit, offset), data, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis: escritura de listado fallida")
	}
}

// InvalidateSaleListings borra todas las páginas cacheadas del listado.
// Usa SCAN para no bloquear Redis con KEYS.
func (c *SaleListingCache) InvalidateSaleListings(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, saleListPrefix+"*", scanBatchSize).Result()
		if err != nil {
			c.log.Warn().Err(err).Msg("redis: scan de listados fallido")
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn().Err(err).Msg("redis: invalidación de listados fallida")
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
