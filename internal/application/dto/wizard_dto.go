package dto

import "github.com/shopspring/decimal"

// OpenSessionRequest abre una sesión del asistente; CustomerID permite
// pre-sembrar el borrador con un cliente ya resuelto.
type OpenSessionRequest struct {
	CustomerID string `json:"customer_id" validate:"omitempty,uuid4"`
}

// BindCustomerRequest resuelve el cliente de la fase 1: por búsqueda de
// documento o con un id ya conocido.
type BindCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
}

// OfferUpdateRequest mutadores de la fase 2. Solo se aplican los campos
// presentes; el orden de aplicación es el declarado (primero tipo de venta,
// después compañía, después selección).
type OfferUpdateRequest struct {
	SaleType        *string             `json:"sale_type" validate:"omitempty,oneof=NEW_LINE PORTABILITY"`
	OriginCompanyID *int64              `json:"origin_company_id"`
	PlanID          *int64              `json:"plan_id"`
	PromotionID     *int64              `json:"promotion_id"`
	ChipType        *string             `json:"chip_type" validate:"omitempty,oneof=SIM ESIM"`
	Portability     *PortabilityRequest `json:"portability"`
}

// PortabilityRequest datos de la portabilidad (fase 2).
// PINExpiry se espera en formato "2006-01-02".
type PortabilityRequest struct {
	SubscriberID string `json:"subscriber_id"`
	NumberToPort string `json:"number_to_port"`
	PIN          string `json:"pin"`
	PINExpiry    string `json:"pin_expiry" validate:"omitempty,datetime=2006-01-02"`
	OriginMarket string `json:"origin_market"`
}

// LogisticsUpdateRequest mutadores de la fase 3 (solo SIM física).
type LogisticsUpdateRequest struct {
	SAPID        *string `json:"sap_id"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	Province     *string `json:"province"`
	ContactPhone *string `json:"contact_phone"`
}

// BackRequest retrocede el asistente a una fase anterior (1 o 2).
type BackRequest struct {
	Phase int `json:"phase" validate:"required,min=1,max=2"`
}

// VerifySAPResponse resultado de la verificación del SAP id vigente.
type VerifySAPResponse struct {
	SAPID  string `json:"sap_id"`
	Status string `json:"status"` // UNVERIFIED | AVAILABLE | TAKEN
}

// SessionResponse estado completo del borrador para la UI del asistente.
type SessionResponse struct {
	ID    string `json:"id"`
	Phase int    `json:"phase"`

	Customer *CustomerResponse `json:"customer,omitempty"`

	SaleType        string              `json:"sale_type"`
	OriginCompanyID int64               `json:"origin_company_id"`
	PlanID          int64               `json:"plan_id,omitempty"`
	PromotionID     int64               `json:"promotion_id,omitempty"`
	ChipType        string              `json:"chip_type"`
	Portability     *PortabilityRequest `json:"portability,omitempty"`

	SAPID        string `json:"sap_id,omitempty"`
	SAPStatus    string `json:"sap_status"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Province     string `json:"province,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	// FinalPrice solo se calcula cuando hay plan seleccionado.
	FinalPrice *decimal.Decimal `json:"final_price,omitempty"`

	// Catálogo del ámbito vigente (cargado al entrar en fase 2 y en cada
	// cambio de ámbito). CatalogWarning avisa de una carga fallida.
	Plans          []PlanResponse      `json:"plans,omitempty"`
	Promotions     []PromotionResponse `json:"promotions,omitempty"`
	CatalogWarning string              `json:"catalog_warning,omitempty"`
}

// SubmitResponse resultado del envío del asistente.
type SubmitResponse struct {
	SaleID            string          `json:"sale_id"`
	FinalPrice        decimal.Decimal `json:"final_price"`
	CorrespondenceRef *string         `json:"correspondence_ref,omitempty"`
}
