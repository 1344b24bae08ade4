package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleResponse venta registrada con su sub-registro de portabilidad si existe.
type SaleResponse struct {
	ID                string               `json:"id"`
	CustomerID        string               `json:"customer_id"`
	PlanID            int64                `json:"plan_id"`
	PromotionID       *int64               `json:"promotion_id,omitempty"`
	OriginCompanyID   int64                `json:"origin_company_id"`
	ChipType          string               `json:"chip_type"`
	SaleType          string               `json:"sale_type"`
	FinalPrice        decimal.Decimal      `json:"final_price"`
	CorrespondenceRef *string              `json:"correspondence_ref,omitempty"`
	Portability       *PortabilityResponse `json:"portability,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// PortabilityResponse sub-registro de portabilidad de una venta.
type PortabilityResponse struct {
	OriginCompanyID int64  `json:"origin_company_id"`
	SubscriberID    string `json:"subscriber_id"`
	NumberToPort    string `json:"number_to_port"`
	OriginMarket    string `json:"origin_market,omitempty"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
