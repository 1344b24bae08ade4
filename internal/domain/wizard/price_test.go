package wizard_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
)

// ──────────────────────────────────────────────────────────────────────────────
// FinalPrice — convención heredada del BSS:
//   0 < d ≤ 100 → porcentaje; d > 100 → importe fijo; si no, precio del plan.
// Resultado redondeado a 2 decimales y nunca negativo.
// ──────────────────────────────────────────────────────────────────────────────

func promoWithDiscount(d float64) *entity.Promotion {
	return &entity.Promotion{ID: 1, CompanyID: 1, Name: "promo test", Discount: decimal.NewFromFloat(d), Active: true}
}

func TestFinalPrice_PorcentajeDiezPorCiento(t *testing.T) {
	price := wizard.FinalPrice(decimal.NewFromInt(1000), promoWithDiscount(10))
	assert.True(t, decimal.NewFromInt(900).Equal(price), "1000 con 10%% debe ser 900, fue %s", price)
}

func TestFinalPrice_ImporteFijoMayorQueCien(t *testing.T) {
	price := wizard.FinalPrice(decimal.NewFromInt(1000), promoWithDiscount(150))
	assert.True(t, decimal.NewFromInt(850).Equal(price), "1000 con descuento fijo 150 debe ser 850, fue %s", price)
}

func TestFinalPrice_SinPromocion(t *testing.T) {
	price := wizard.FinalPrice(decimal.NewFromFloat(29.90), nil)
	assert.True(t, decimal.NewFromFloat(29.90).Equal(price))
}

func TestFinalPrice_DescuentoCeroONegativo(t *testing.T) {
	base := decimal.NewFromInt(500)
	assert.True(t, base.Equal(wizard.FinalPrice(base, promoWithDiscount(0))))
	assert.True(t, base.Equal(wizard.FinalPrice(base, promoWithDiscount(-5))))
}

func TestFinalPrice_CienPorCientoDejaPrecioCero(t *testing.T) {
	price := wizard.FinalPrice(decimal.NewFromInt(1000), promoWithDiscount(100))
	assert.True(t, price.IsZero(), "descuento del 100%% debe dejar el precio en 0, fue %s", price)
}

func TestFinalPrice_ImporteFijoMayorQueElPlan_SueloEnCero(t *testing.T) {
	// Descuento fijo 150 sobre un plan de 120: sin suelo daría -30.
	price := wizard.FinalPrice(decimal.NewFromInt(120), promoWithDiscount(150))
	assert.True(t, price.IsZero(), "el precio final nunca es negativo, fue %s", price)
}

func TestFinalPrice_RedondeoADosDecimales(t *testing.T) {
	// 19.99 con 33% = 13.3933 → 13.39
	price := wizard.FinalPrice(decimal.NewFromFloat(19.99), promoWithDiscount(33))
	assert.Equal(t, "13.39", price.StringFixed(2))
}

func TestFinalPrice_Idempotente(t *testing.T) {
	plan := decimal.NewFromFloat(45.50)
	promo := promoWithDiscount(25)
	first := wizard.FinalPrice(plan, promo)
	second := wizard.FinalPrice(plan, promo)
	assert.True(t, first.Equal(second), "mismos argumentos deben producir el mismo precio")
}
