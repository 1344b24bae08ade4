package entity

import "github.com/shopspring/decimal"

// Promotion representa una promoción aplicable a los planes de una compañía.
//
// Discount conserva la convención heredada del BSS: un valor entre 0 y 100 es
// un porcentaje; un valor mayor que 100 es un importe fijo a restar del precio
// del plan. Ver wizard.FinalPrice.
type Promotion struct {
	ID        int64
	CompanyID int64
	Name      string
	Discount  decimal.Decimal
	Active    bool
}

// IsPercentage indica si el descuento se interpreta como porcentaje (0 < d ≤ 100).
func (p Promotion) IsPercentage() bool {
	return p.Discount.IsPositive() && p.Discount.LessThanOrEqual(decimal.NewFromInt(100))
}
