package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// ListByCompany lista los planes activos de una compañía.
func (r *PlanRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.Plan, error) {
	query := `
		SELECT id, company_id, name, price, data_gb, minutes, sms, active
		FROM plans WHERE company_id = $1 AND active ORDER BY price`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Price, &p.DataGB, &p.Minutes, &p.SMS, &p.Active); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(ctx context.Context, id int64) (*entity.Plan, error) {
	query := `
		SELECT id, company_id, name, price, data_gb, minutes, sms, active
		FROM plans WHERE id = $1`
	var p entity.Plan
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Price, &p.DataGB, &p.Minutes, &p.SMS, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}
