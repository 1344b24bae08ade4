package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementación de PromotionRepository (usable con pool o tx).
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

// ListByCompany lista las promociones activas de una compañía.
func (r *PromotionRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.Promotion, error) {
	query := `
		SELECT id, company_id, name, discount, active
		FROM promotions WHERE company_id = $1 AND active ORDER BY id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()
	var list []entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Discount, &p.Active); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(ctx context.Context, id int64) (*entity.Promotion, error) {
	query := `
		SELECT id, company_id, name, discount, active
		FROM promotions WHERE id = $1`
	var p entity.Promotion
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.CompanyID, &p.Name, &p.Discount, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}
