package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. El par (doc_type, doc_number) tiene
// constraint único.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, doc_type, doc_number, name, surname, email, phone, birth_date, gender, nationality, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.DocType, customer.DocNumber, customer.Name, customer.Surname,
		customer.Email, customer.Phone, customer.BirthDate, nullIfEmpty(customer.Gender),
		customer.Nationality, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByDocument busca por tipo y número de documento; (nil, nil) si no existe.
func (r *CustomerRepo) GetByDocument(ctx context.Context, docType, docNumber string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE doc_type = $1 AND doc_number = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, docType, docNumber))
}

const customerSelect = `
	SELECT id, doc_type, doc_number, name, surname, email, phone, birth_date, gender, nationality, created_at, updated_at
	FROM customers`

func (r *CustomerRepo) scanOne(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var gender *string
	err := row.Scan(
		&c.ID, &c.DocType, &c.DocNumber, &c.Name, &c.Surname, &c.Email, &c.Phone,
		&c.BirthDate, &gender, &c.Nationality, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if gender != nil {
		c.Gender = *gender
	}
	return &c, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
