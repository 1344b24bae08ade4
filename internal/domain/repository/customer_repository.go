package repository

import (
	"context"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// GetByDocument busca por tipo y número de documento; (nil, nil) si no existe.
	GetByDocument(ctx context.Context, docType, docNumber string) (*entity.Customer, error)
}
