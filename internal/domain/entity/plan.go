package entity

import "github.com/shopspring/decimal"

// Plan representa una tarifa comercial del catálogo.
// Price es el precio base mensual antes de promoción.
type Plan struct {
	ID        int64
	CompanyID int64
	Name      string
	Price     decimal.Decimal
	DataGB    int // gigas incluidos; 0 = ilimitado según la ficha comercial
	Minutes   int // minutos de voz incluidos; 0 = ilimitados
	SMS       int
	Active    bool
}
