package repository

import (
	"context"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// PlanRepository define el puerto de lectura del catálogo de planes.
type PlanRepository interface {
	// ListByCompany devuelve los planes activos de la compañía.
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Plan, error)
	GetByID(ctx context.Context, id int64) (*entity.Plan, error)
}
