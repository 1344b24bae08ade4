package repository

import (
	"context"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// PromotionRepository define el puerto de lectura del catálogo de promociones.
type PromotionRepository interface {
	// ListByCompany devuelve las promociones activas de la compañía.
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Promotion, error)
	GetByID(ctx context.Context, id int64) (*entity.Promotion, error)
}
