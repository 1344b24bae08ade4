// Package wizard implementa la máquina de estados del asistente de alta:
// el borrador de venta (SaleDraft) como valor inmutable con transiciones
// explícitas, las puertas de cada fase y el cálculo de precio final.
//
// El borrador acumula:
//
//	Fase 1 → cliente resuelto (buscado o creado)
//	Fase 2 → oferta negociada (tipo de venta, compañía, plan, promoción, chip)
//	Fase 3 → logística SAP (solo SIM física) o resumen (eSIM)
//
// Ninguna transición resetea campos: navegar atrás y volver adelante conserva
// todo lo introducido. Los mutadores devuelven una copia del borrador; el
// estado compartido por sesión vive en el session store de la aplicación.
package wizard

import (
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// Phase identifica la fase activa del asistente.
type Phase int

const (
	PhaseCustomer  Phase = 1 // resolución de cliente
	PhaseOffer     Phase = 2 // negociación de la oferta
	PhaseLogistics Phase = 3 // logística SAP o resumen (eSIM)
)

// String implementa fmt.Stringer para logs y respuestas.
func (p Phase) String() string {
	switch p {
	case PhaseCustomer:
		return "CUSTOMER"
	case PhaseOffer:
		return "OFFER"
	case PhaseLogistics:
		return "LOGISTICS"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Estado de verificación del identificador SAP. Válido únicamente para el
// texto exacto verificado por última vez: cualquier edición vuelve a
// SAPUnverified.
type SAPStatus string

const (
	SAPUnverified SAPStatus = "UNVERIFIED"
	SAPAvailable  SAPStatus = "AVAILABLE"
	SAPTaken      SAPStatus = "TAKEN"
)

// Draft es el borrador de venta del asistente. Es un valor: los mutadores
// devuelven una copia modificada y el original queda intacto.
type Draft struct {
	Phase Phase

	// InternalCarrierID es el id del operador propio (constante de
	// configuración): origen fijo de toda alta de línea nueva.
	InternalCarrierID int64

	// Fase 1
	Customer *entity.Customer

	// Fase 2
	SaleType        string
	OriginCompanyID int64
	PlanID          int64
	PromotionID     int64 // 0 = sin promoción
	ChipType        string
	SubscriberID    string // portabilidad: abonado en el operador de origen
	NumberToPort    string
	PIN             string
	PINExpiry       *time.Time
	OriginMarket    string

	// Fase 3
	SAPID        string
	SAPStatus    SAPStatus
	Street       string
	City         string
	PostalCode   string
	Province     string
	ContactPhone string

	// ScopeGen crece con cada cambio de ámbito comercial; las respuestas de
	// catálogo en vuelo para una generación anterior se descartan.
	ScopeGen uint64
}

// NewDraft crea el borrador inicial: fase 1, línea nueva con el operador
// propio como origen y SIM física por defecto.
func NewDraft(internalCarrierID int64) Draft {
	return Draft{
		Phase:             PhaseCustomer,
		InternalCarrierID: internalCarrierID,
		SaleType:          entity.SaleTypeNewLine,
		OriginCompanyID:   internalCarrierID,
		ChipType:          entity.ChipSIM,
		SAPStatus:         SAPUnverified,
	}
}

// Scope devuelve el ámbito comercial actual del borrador.
func (d Draft) Scope() Scope {
	return Scope{SaleType: d.SaleType, CompanyID: d.OriginCompanyID}
}

// ── Fase 1: cliente ───────────────────────────────────────────────────────────

// BindCustomer fija el cliente resuelto (buscado o recién creado).
func (d Draft) BindCustomer(c *entity.Customer) Draft {
	d.Customer = c
	return d
}

// ── Fase 2: mutadores de oferta ──────────────────────────────────────────────

// SetSaleType cambia el tipo de venta. Si el tipo cambia, el plan y la
// promoción seleccionados dejan de pertenecer al nuevo ámbito y se limpian.
// NEW_LINE fija además la compañía de origen al operador propio.
func (d Draft) SetSaleType(saleType string) (Draft, error) {
	switch saleType {
	case entity.SaleTypeNewLine, entity.SaleTypePortability:
	default:
		return d, fmt.Errorf("tipo de venta %q: %w", saleType, domain.ErrInvalidInput)
	}
	if saleType == d.SaleType {
		return d, nil
	}
	d.SaleType = saleType
	if saleType == entity.SaleTypeNewLine {
		d.OriginCompanyID = d.InternalCarrierID
	} else {
		// pendiente de selección por el operador
		d.OriginCompanyID = 0
	}
	return d.clearSelection(), nil
}

// SetOriginCompany cambia la compañía de origen (solo portabilidad: en línea
// nueva el selector no aplica y el origen es el operador propio). El cambio
// limpia plan y promoción seleccionados.
func (d Draft) SetOriginCompany(companyID int64) (Draft, error) {
	if d.SaleType != entity.SaleTypePortability {
		return d, fmt.Errorf("la compañía de origen solo aplica a portabilidad: %w", domain.ErrInvalidInput)
	}
	if companyID <= 0 {
		return d, fmt.Errorf("compañía de origen %d: %w", companyID, domain.ErrInvalidInput)
	}
	if companyID == d.InternalCarrierID {
		return d, fmt.Errorf("una portabilidad no puede tener como origen al operador propio: %w", domain.ErrInvalidInput)
	}
	if companyID == d.OriginCompanyID {
		return d, nil
	}
	d.OriginCompanyID = companyID
	return d.clearSelection(), nil
}

// clearSelection limpia plan y promoción tras un cambio de ámbito y avanza la
// generación para invalidar las cargas de catálogo en vuelo.
func (d Draft) clearSelection() Draft {
	d.PlanID = 0
	d.PromotionID = 0
	d.ScopeGen++
	return d
}

// SetPlan selecciona un plan. La pertenencia al ámbito la valida el caso de
// uso contra el catálogo.
func (d Draft) SetPlan(planID int64) Draft {
	d.PlanID = planID
	return d
}

// SetPromotion selecciona una promoción (0 = quitarla).
func (d Draft) SetPromotion(promotionID int64) Draft {
	d.PromotionID = promotionID
	return d
}

// SetChipType cambia el tipo de chip. eSIM no requiere logística; los campos
// ya introducidos se conservan por si el operador vuelve a SIM.
func (d Draft) SetChipType(chipType string) (Draft, error) {
	switch chipType {
	case entity.ChipSIM, entity.ChipESIM:
	default:
		return d, fmt.Errorf("tipo de chip %q: %w", chipType, domain.ErrInvalidInput)
	}
	d.ChipType = chipType
	return d, nil
}

// SetPortabilityDetails fija los datos de la portabilidad.
func (d Draft) SetPortabilityDetails(subscriberID, numberToPort, pin string, pinExpiry *time.Time, originMarket string) Draft {
	d.SubscriberID = subscriberID
	d.NumberToPort = numberToPort
	d.PIN = pin
	d.PINExpiry = pinExpiry
	d.OriginMarket = originMarket
	return d
}

// ── Fase 3: mutadores de logística ───────────────────────────────────────────

// SetSAPID fija el identificador SAP. Editar el texto invalida cualquier
// verificación previa: el estado vuelve a SAPUnverified.
func (d Draft) SetSAPID(sapID string) Draft {
	if sapID == d.SAPID {
		return d
	}
	d.SAPID = sapID
	d.SAPStatus = SAPUnverified
	return d
}

// ApplySAPResult aplica el resultado de una verificación. Solo se acepta si
// verifiedText coincide con el SAP id vigente; un resultado para un texto ya
// editado se descarta (respuesta obsoleta).
func (d Draft) ApplySAPResult(verifiedText string, status SAPStatus) Draft {
	if verifiedText != d.SAPID {
		return d
	}
	d.SAPStatus = status
	return d
}

// SetShippingAddress fija la dirección de envío de la SIM física.
func (d Draft) SetShippingAddress(street, city, postalCode, province string) Draft {
	d.Street = street
	d.City = city
	d.PostalCode = postalCode
	d.Province = province
	return d
}

// SetContactPhone fija el teléfono de contacto para la entrega.
func (d Draft) SetContactPhone(phone string) Draft {
	d.ContactPhone = phone
	return d
}

// ── Puertas de fase ──────────────────────────────────────────────────────────

// GateCustomer es la puerta de la fase 1: hace falta un cliente resuelto.
func (d Draft) GateCustomer() error {
	if d.Customer == nil {
		return fmt.Errorf("falta resolver el cliente: %w", domain.ErrInvalidInput)
	}
	return nil
}

// GateOffer es la puerta de la fase 2.
// NEW_LINE exige plan; PORTABILITY exige compañía de origen distinta del
// operador propio, plan, abonado de origen y número a portar.
func (d Draft) GateOffer() error {
	switch d.SaleType {
	case entity.SaleTypeNewLine:
		if d.PlanID <= 0 {
			return fmt.Errorf("falta seleccionar plan: %w", domain.ErrInvalidInput)
		}
	case entity.SaleTypePortability:
		if d.OriginCompanyID <= 0 {
			return fmt.Errorf("falta la compañía de origen: %w", domain.ErrInvalidInput)
		}
		if d.OriginCompanyID == d.InternalCarrierID {
			return fmt.Errorf("la compañía de origen no puede ser el operador propio: %w", domain.ErrInvalidInput)
		}
		if d.PlanID <= 0 {
			return fmt.Errorf("falta seleccionar plan: %w", domain.ErrInvalidInput)
		}
		if d.SubscriberID == "" {
			return fmt.Errorf("falta el identificador de abonado de origen: %w", domain.ErrInvalidInput)
		}
		if d.NumberToPort == "" {
			return fmt.Errorf("falta el número a portar: %w", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("tipo de venta %q: %w", d.SaleType, domain.ErrInvalidInput)
	}
	return nil
}

// GateLogistics es la puerta de la fase 3. eSIM no requiere logística; SIM
// exige SAP id verificado como disponible (para el texto vigente) y teléfono
// de contacto.
func (d Draft) GateLogistics() error {
	if d.ChipType == entity.ChipESIM {
		return nil
	}
	if d.SAPStatus != SAPAvailable {
		return fmt.Errorf("el identificador SAP no está verificado como disponible: %w", domain.ErrInvalidInput)
	}
	if d.ContactPhone == "" {
		return fmt.Errorf("falta el teléfono de contacto: %w", domain.ErrInvalidInput)
	}
	return nil
}

// ── Navegación ───────────────────────────────────────────────────────────────

// Advance pasa a la fase siguiente si la puerta de la fase actual se cumple.
// Desde la fase 3 no se avanza: el cierre es Submit en el orquestador.
func (d Draft) Advance() (Draft, error) {
	switch d.Phase {
	case PhaseCustomer:
		if err := d.GateCustomer(); err != nil {
			return d, err
		}
		d.Phase = PhaseOffer
	case PhaseOffer:
		if err := d.GateOffer(); err != nil {
			return d, err
		}
		d.Phase = PhaseLogistics
	default:
		return d, fmt.Errorf("no hay fase posterior a %s: %w", d.Phase, domain.ErrPhaseGate)
	}
	return d, nil
}

// Back retrocede a una fase anterior; siempre está permitido y no resetea
// ningún campo.
func (d Draft) Back(to Phase) (Draft, error) {
	if to < PhaseCustomer || to >= d.Phase {
		return d, fmt.Errorf("no se puede retroceder de %s a %s: %w", d.Phase, to, domain.ErrPhaseGate)
	}
	d.Phase = to
	return d, nil
}

// CanSubmit comprueba las precondiciones del envío: estar en fase 3 con
// cliente resuelto y las puertas de oferta y logística cumplidas.
func (d Draft) CanSubmit() error {
	if d.Phase != PhaseLogistics {
		return fmt.Errorf("el envío solo es posible desde la fase 3: %w", domain.ErrPhaseGate)
	}
	if err := d.GateCustomer(); err != nil {
		return err
	}
	if err := d.GateOffer(); err != nil {
		return err
	}
	return d.GateLogistics()
}
