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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx). Los
// inserts del alta se ejecutan siempre a través del TxRunner: venta y
// portabilidad en la misma transacción.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, plan_id, promotion_id, origin_company_id, chip_type, sale_type, final_price, correspondence_ref, created_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerID, sale.PlanID, sale.PromotionID, sale.OriginCompanyID,
		sale.ChipType, sale.SaleType, sale.FinalPrice, sale.CorrespondenceRef,
		sale.CreatedByUserID, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreatePortability persiste el sub-registro de portabilidad de una venta.
func (r *SaleRepo) CreatePortability(ctx context.Context, p *entity.Portability) error {
	query := `
		INSERT INTO sale_portabilities (sale_id, origin_company_id, subscriber_id, number_to_port, pin, pin_expiry, origin_market)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		p.SaleID, p.OriginCompanyID, p.SubscriberID, p.NumberToPort,
		nullIfEmpty(p.PIN), p.PINExpiry, nullIfEmpty(p.OriginMarket),
	)
	if err != nil {
		return fmt.Errorf("insert portability: %w", err)
	}
	return nil
}

const saleSelect = `
	SELECT id, customer_id, plan_id, promotion_id, origin_company_id, chip_type, sale_type, final_price, correspondence_ref, created_by_user_id, created_at
	FROM sales`

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, saleSelect+` WHERE id = $1`, id).Scan(
		&s.ID, &s.CustomerID, &s.PlanID, &s.PromotionID, &s.OriginCompanyID,
		&s.ChipType, &s.SaleType, &s.FinalPrice, &s.CorrespondenceRef,
		&s.CreatedByUserID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetPortability devuelve el sub-registro de una venta; (nil, nil) si no tiene.
func (r *SaleRepo) GetPortability(ctx context.Context, saleID string) (*entity.Portability, error) {
	query := `
		SELECT sale_id, origin_company_id, subscriber_id, number_to_port, pin, pin_expiry, origin_market
		FROM sale_portabilities WHERE sale_id = $1`
	var p entity.Portability
	var pin, market *string
	err := r.q.QueryRow(ctx, query, saleID).Scan(
		&p.SaleID, &p.OriginCompanyID, &p.SubscriberID, &p.NumberToPort,
		&pin, &p.PINExpiry, &market,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get portability: %w", err)
	}
	if pin != nil {
		p.PIN = *pin
	}
	if market != nil {
		p.OriginMarket = *market
	}
	return &p, nil
}

// List lista ventas de más reciente a más antigua con paginación.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, saleSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.PlanID, &s.PromotionID, &s.OriginCompanyID,
			&s.ChipType, &s.SaleType, &s.FinalPrice, &s.CorrespondenceRef,
			&s.CreatedByUserID, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
