package wizard

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// FinalPrice calcula el precio final de la oferta a partir del precio base del
// plan y la promoción seleccionada (nil = sin promoción).
//
// Convención heredada del BSS sobre Promotion.Discount:
//   - 0 < d ≤ 100  → porcentaje de descuento sobre el precio del plan.
//   - d > 100      → importe fijo a restar.
//   - otro caso    → sin descuento.
//
// El resultado se redondea a 2 decimales y nunca es negativo. La función es
// pura: mismos argumentos, mismo resultado.
func FinalPrice(planPrice decimal.Decimal, promo *entity.Promotion) decimal.Decimal {
	discount := decimal.Zero
	if promo != nil {
		discount = promo.Discount
	}

	var price decimal.Decimal
	switch {
	case discount.IsPositive() && discount.LessThanOrEqual(hundred):
		price = planPrice.Mul(hundred.Sub(discount)).Div(hundred).Round(2)
	case discount.GreaterThan(hundred):
		price = planPrice.Sub(discount).Round(2)
	default:
		price = planPrice.Round(2)
	}

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}
