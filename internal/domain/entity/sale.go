package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleTypeNewLine     = "NEW_LINE"
	SaleTypePortability = "PORTABILITY"
)

// Tipos de chip. eSIM no genera envío físico ni registro logístico.
const (
	ChipSIM  = "SIM"
	ChipESIM = "ESIM"
)

// Sale es la venta registrada: vincula cliente, plan, promoción y compañía de
// origen. Se persiste únicamente vía el orquestador de envío del asistente.
type Sale struct {
	ID                string
	CustomerID        string
	PlanID            int64
	PromotionID       *int64 // opcional
	OriginCompanyID   int64
	ChipType          string
	SaleType          string
	FinalPrice        decimal.Decimal
	CorrespondenceRef *string // ID del registro logístico SAP; nil para eSIM
	CreatedByUserID   string
	CreatedAt         time.Time
}

// Portability es el sub-registro de portabilidad de una venta PORTABILITY.
type Portability struct {
	SaleID          string
	OriginCompanyID int64
	SubscriberID    string // identificador de abonado en el operador de origen
	NumberToPort    string
	PIN             string
	PINExpiry       *time.Time
	OriginMarket    string // segmento del mercado de origen (prepago/pospago)
}
