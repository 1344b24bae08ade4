package dto

import "github.com/shopspring/decimal"

// CompanyResponse operador del catálogo.
type CompanyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// PlanResponse plan comercial del catálogo.
type PlanResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	DataGB    int             `json:"data_gb"`
	Minutes   int             `json:"minutes"`
	SMS       int             `json:"sms"`
}

// PromotionResponse promoción del catálogo.
type PromotionResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company_id"`
	Name      string          `json:"name"`
	Discount  decimal.Decimal `json:"discount"`
}

// CompanyListResponse listado de operadores.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}

// PlanListResponse listado de planes del ámbito pedido. Si la carga falló,
// Items va vacío y Warning explica el porqué (reintento manual, nunca
// automático).
type PlanListResponse struct {
	Items   []PlanResponse `json:"items"`
	Warning string         `json:"warning,omitempty"`
}

// PromotionListResponse listado de promociones del ámbito pedido; misma
// semántica de Warning que PlanListResponse.
type PromotionListResponse struct {
	Items   []PromotionResponse `json:"items"`
	Warning string              `json:"warning,omitempty"`
}
