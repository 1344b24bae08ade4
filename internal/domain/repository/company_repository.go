package repository

import (
	"context"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura del catálogo de operadores.
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
}
