// Package catalog implementa el resolver de datos de referencia del asistente:
// compañías, planes y promociones, con caché por ámbito comercial.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

// Resolver carga y cachea los datos de referencia. Las compañías son
// prácticamente estáticas (TTL largo); planes y promociones caducan en
// decenas de minutos y se invalidan por ámbito.
//
// Una carga fallida devuelve SIEMPRE un slice vacío más un error normalizado
// a domain.ErrTransient: el controlador del asistente nunca recibe un panic
// ni un error crudo de infraestructura, y el reintento es manual.
type Resolver struct {
	companyRepo repository.CompanyRepository
	planRepo    repository.PlanRepository
	promoRepo   repository.PromotionRepository
	cache       Cache
	companyTTL  time.Duration
	catalogTTL  time.Duration
	log         *logger.Logger
}

// NewResolver construye el resolver con sus puertos.
func NewResolver(
	companyRepo repository.CompanyRepository,
	planRepo repository.PlanRepository,
	promoRepo repository.PromotionRepository,
	cache Cache,
	companyTTL, catalogTTL time.Duration,
	log *logger.Logger,
) *Resolver {
	return &Resolver{
		companyRepo: companyRepo,
		planRepo:    planRepo,
		promoRepo:   promoRepo,
		cache:       cache,
		companyTTL:  companyTTL,
		catalogTTL:  catalogTTL,
		log:         log,
	}
}

// Companies devuelve la lista de operadores (caché de larga duración).
func (r *Resolver) Companies(ctx context.Context) ([]entity.Company, error) {
	if items, ok := r.cache.GetCompanies(ctx); ok {
		return items, nil
	}
	items, err := r.companyRepo.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("catálogo: carga de compañías fallida")
		return []entity.Company{}, fmt.Errorf("cargar compañías (%v): %w", err, domain.ErrTransient)
	}
	r.cache.SetCompanies(ctx, items, r.companyTTL)
	return items, nil
}

// Plans devuelve los planes del ámbito (caché por scope).
func (r *Resolver) Plans(ctx context.Context, scope wizard.Scope) ([]entity.Plan, error) {
	key := scope.Key()
	if items, ok := r.cache.GetPlans(ctx, key); ok {
		return items, nil
	}
	items, err := r.planRepo.ListByCompany(ctx, scope.CompanyID)
	if err != nil {
		r.log.Warn().Err(err).Str("scope", key).Msg("catálogo: carga de planes fallida")
		return []entity.Plan{}, fmt.Errorf("cargar planes de %s (%v): %w", key, err, domain.ErrTransient)
	}
	r.cache.SetPlans(ctx, key, items, r.catalogTTL)
	return items, nil
}

// Promotions devuelve las promociones del ámbito (caché por scope).
func (r *Resolver) Promotions(ctx context.Context, scope wizard.Scope) ([]entity.Promotion, error) {
	key := scope.Key()
	if items, ok := r.cache.GetPromotions(ctx, key); ok {
		return items, nil
	}
	items, err := r.promoRepo.ListByCompany(ctx, scope.CompanyID)
	if err != nil {
		r.log.Warn().Err(err).Str("scope", key).Msg("catálogo: carga de promociones fallida")
		return []entity.Promotion{}, fmt.Errorf("cargar promociones de %s (%v): %w", key, err, domain.ErrTransient)
	}
	r.cache.SetPromotions(ctx, key, items, r.catalogTTL)
	return items, nil
}

// InvalidateScope fuerza la recarga de planes y promociones del ámbito en la
// próxima consulta. La lista de compañías no se toca.
func (r *Resolver) InvalidateScope(ctx context.Context, scope wizard.Scope) {
	r.cache.InvalidateScope(ctx, scope.Key())
}

// PlanInScope valida que el plan exista, esté activo y pertenezca al ámbito.
func (r *Resolver) PlanInScope(ctx context.Context, scope wizard.Scope, planID int64) (*entity.Plan, error) {
	plan, err := r.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("consultar plan %d (%v): %w", planID, err, domain.ErrTransient)
	}
	if plan == nil || !plan.Active {
		return nil, fmt.Errorf("plan %d: %w", planID, domain.ErrNotFound)
	}
	if plan.CompanyID != scope.CompanyID {
		return nil, fmt.Errorf("el plan %d no pertenece al ámbito %s: %w", planID, scope.Key(), domain.ErrInvalidInput)
	}
	return plan, nil
}

// PromotionInScope valida que la promoción exista, esté activa y pertenezca
// al ámbito.
func (r *Resolver) PromotionInScope(ctx context.Context, scope wizard.Scope, promotionID int64) (*entity.Promotion, error) {
	promo, err := r.promoRepo.GetByID(ctx, promotionID)
	if err != nil {
		return nil, fmt.Errorf("consultar promoción %d (%v): %w", promotionID, err, domain.ErrTransient)
	}
	if promo == nil || !promo.Active {
		return nil, fmt.Errorf("promoción %d: %w", promotionID, domain.ErrNotFound)
	}
	if promo.CompanyID != scope.CompanyID {
		return nil, fmt.Errorf("la promoción %d no pertenece al ámbito %s: %w", promotionID, scope.Key(), domain.ErrInvalidInput)
	}
	return promo, nil
}
