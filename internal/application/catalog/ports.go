package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// Cache define el puerto de caché del resolver de catálogo. La implementación
// (Redis) degrada a miss ante cualquier fallo propio: la caché nunca rompe la
// resolución, como mucho la encarece.
type Cache interface {
	GetCompanies(ctx context.Context) ([]entity.Company, bool)
	SetCompanies(ctx context.Context, items []entity.Company, ttl time.Duration)

	GetPlans(ctx context.Context, scopeKey string) ([]entity.Plan, bool)
	SetPlans(ctx context.Context, scopeKey string, items []entity.Plan, ttl time.Duration)

	GetPromotions(ctx context.Context, scopeKey string) ([]entity.Promotion, bool)
	SetPromotions(ctx context.Context, scopeKey string, items []entity.Promotion, ttl time.Duration)

	// InvalidateScope borra planes y promociones del scope; nunca toca la
	// lista de compañías.
	InvalidateScope(ctx context.Context, scopeKey string)
}
