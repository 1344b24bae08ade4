// Package rediscache implementa sobre Redis las cachés de catálogo y de
// listados de ventas. Todos los fallos de Redis degradan a miss: la caché
// nunca rompe una petición, como mucho la encarece.
package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

// NewClient crea el cliente Redis y comprueba la conexión.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return client, nil
}
