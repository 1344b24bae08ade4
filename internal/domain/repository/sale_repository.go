package repository

import (
	"context"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y su sub-registro
// de portabilidad.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreatePortability(ctx context.Context, p *entity.Portability) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// GetPortability devuelve el sub-registro de una venta; (nil, nil) si no tiene.
	GetPortability(ctx context.Context, saleID string) (*entity.Portability, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
}
