// Package alta implementa el motor del asistente de alta de ventas: las
// sesiones del asistente (borrador + catálogo del ámbito), la navegación
// entre fases y el orquestador de envío.
package alta

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

// UseCase gestiona el ciclo de vida de las sesiones del asistente: apertura,
// mutación del borrador, navegación y verificación SAP. El envío final es
// responsabilidad del Orchestrator.
type UseCase struct {
	store             SessionStore
	resolver          *catalog.Resolver
	customerRepo      repository.CustomerRepository
	logistics         LogisticsClient
	internalCarrierID int64
	validate          *validator.Validate
	log               *logger.Logger
}

// NewUseCase construye el caso de uso del asistente.
func NewUseCase(
	store SessionStore,
	resolver *catalog.Resolver,
	customerRepo repository.CustomerRepository,
	logistics LogisticsClient,
	internalCarrierID int64,
	validate *validator.Validate,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		store:             store,
		resolver:          resolver,
		customerRepo:      customerRepo,
		logistics:         logistics,
		internalCarrierID: internalCarrierID,
		validate:          validate,
		log:               log,
	}
}

// Open abre una sesión nueva en fase 1. Si la petición trae un cliente ya
// resuelto, el borrador arranca con él vinculado.
func (uc *UseCase) Open(ctx context.Context, userID string, in dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("apertura de sesión (%v): %w", err, domain.ErrInvalidInput)
	}
	draft := wizard.NewDraft(uc.internalCarrierID)
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
		}
		draft = draft.BindCustomer(customer)
	}
	s := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Draft:     draft,
		CreatedAt: time.Now(),
	}
	if err := uc.store.Put(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", s.ID).Str("user_id", userID).Msg("sesión de alta abierta")
	return uc.view(s), nil
}

// Get devuelve el estado completo de la sesión para la UI.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SessionResponse, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrSessionExpired)
	}
	return uc.view(s), nil
}

// Cancel cierra la sesión descartando el borrador. Cancelar una sesión ya
// caducada no es un error.
func (uc *UseCase) Cancel(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

// BindCustomer vincula el cliente resuelto al borrador (fase 1).
func (uc *UseCase) BindCustomer(ctx context.Context, id string, in dto.BindCustomerRequest) (*dto.SessionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("vincular cliente (%v): %w", err, domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
	}
	s, err := uc.update(ctx, id, func(s *Session) error {
		if s.Draft.Phase != wizard.PhaseCustomer {
			return fmt.Errorf("el cliente se resuelve en la fase 1: %w", domain.ErrPhaseGate)
		}
		s.Draft = s.Draft.BindCustomer(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// UpdateOffer aplica los mutadores de la fase 2 presentes en la petición, en
// el orden declarado: tipo de venta, compañía de origen, plan, promoción,
// chip y datos de portabilidad. La pertenencia de plan y promoción al ámbito
// se valida contra el catálogo.
func (uc *UseCase) UpdateOffer(ctx context.Context, id string, in dto.OfferUpdateRequest) (*dto.SessionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("actualizar oferta (%v): %w", err, domain.ErrInvalidInput)
	}
	var pinExpiry *time.Time
	if in.Portability != nil && in.Portability.PINExpiry != "" {
		t, err := time.Parse("2006-01-02", in.Portability.PINExpiry)
		if err != nil {
			return nil, fmt.Errorf("caducidad de PIN %q: %w", in.Portability.PINExpiry, domain.ErrInvalidInput)
		}
		pinExpiry = &t
	}

	var prevGen uint64
	s, err := uc.update(ctx, id, func(s *Session) error {
		if s.Draft.Phase != wizard.PhaseOffer {
			return fmt.Errorf("la oferta se edita en la fase 2: %w", domain.ErrPhaseGate)
		}
		prevGen = s.Draft.ScopeGen
		d := s.Draft
		var err error
		if in.SaleType != nil {
			if d, err = d.SetSaleType(*in.SaleType); err != nil {
				return err
			}
		}
		if in.OriginCompanyID != nil {
			if d, err = d.SetOriginCompany(*in.OriginCompanyID); err != nil {
				return err
			}
		}
		if in.PlanID != nil {
			if *in.PlanID > 0 {
				if _, err = uc.resolver.PlanInScope(ctx, d.Scope(), *in.PlanID); err != nil {
					return err
				}
			}
			d = d.SetPlan(*in.PlanID)
		}
		if in.PromotionID != nil {
			if *in.PromotionID > 0 {
				if _, err = uc.resolver.PromotionInScope(ctx, d.Scope(), *in.PromotionID); err != nil {
					return err
				}
			}
			d = d.SetPromotion(*in.PromotionID)
		}
		if in.ChipType != nil {
			if d, err = d.SetChipType(*in.ChipType); err != nil {
				return err
			}
		}
		if p := in.Portability; p != nil {
			d = d.SetPortabilityDetails(p.SubscriberID, p.NumberToPort, p.PIN, pinExpiry, p.OriginMarket)
		}
		s.Draft = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Un cambio de ámbito invalida el catálogo de la sesión: se recarga para
	// la generación nueva y cualquier carga en vuelo de la anterior se
	// descarta al aterrizar.
	if s.Draft.ScopeGen != prevGen {
		if s, err = uc.reloadCatalog(ctx, id, s.Draft.Scope(), s.Draft.ScopeGen); err != nil {
			return nil, err
		}
	}
	return uc.view(s), nil
}

// Advance pasa a la fase siguiente si la puerta de la fase actual se cumple.
// Entrar en la fase 2 carga el catálogo del ámbito vigente.
func (uc *UseCase) Advance(ctx context.Context, id string) (*dto.SessionResponse, error) {
	s, err := uc.update(ctx, id, func(s *Session) error {
		d, err := s.Draft.Advance()
		if err != nil {
			return err
		}
		s.Draft = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Draft.Phase == wizard.PhaseOffer {
		if s, err = uc.reloadCatalog(ctx, id, s.Draft.Scope(), s.Draft.ScopeGen); err != nil {
			return nil, err
		}
	}
	return uc.view(s), nil
}

// Back retrocede a la fase pedida sin resetear ningún campo del borrador.
func (uc *UseCase) Back(ctx context.Context, id string, in dto.BackRequest) (*dto.SessionResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("retroceder (%v): %w", err, domain.ErrInvalidInput)
	}
	s, err := uc.update(ctx, id, func(s *Session) error {
		d, err := s.Draft.Back(wizard.Phase(in.Phase))
		if err != nil {
			return err
		}
		s.Draft = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// RefreshCatalog recarga manualmente el catálogo del ámbito vigente tras una
// carga fallida. El asistente nunca reintenta solo.
func (uc *UseCase) RefreshCatalog(ctx context.Context, id string) (*dto.SessionResponse, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrSessionExpired)
	}
	uc.resolver.InvalidateScope(ctx, s.Draft.Scope())
	if s, err = uc.reloadCatalog(ctx, id, s.Draft.Scope(), s.Draft.ScopeGen); err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// UpdateLogistics aplica los mutadores de la fase 3. Editar el SAP id vuelve
// su estado a UNVERIFIED.
func (uc *UseCase) UpdateLogistics(ctx context.Context, id string, in dto.LogisticsUpdateRequest) (*dto.SessionResponse, error) {
	s, err := uc.update(ctx, id, func(s *Session) error {
		if s.Draft.Phase != wizard.PhaseLogistics {
			return fmt.Errorf("la logística se edita en la fase 3: %w", domain.ErrPhaseGate)
		}
		d := s.Draft
		if in.SAPID != nil {
			d = d.SetSAPID(*in.SAPID)
		}
		if in.Street != nil || in.City != nil || in.PostalCode != nil || in.Province != nil {
			d = d.SetShippingAddress(
				pick(in.Street, d.Street),
				pick(in.City, d.City),
				pick(in.PostalCode, d.PostalCode),
				pick(in.Province, d.Province),
			)
		}
		if in.ContactPhone != nil {
			d = d.SetContactPhone(*in.ContactPhone)
		}
		s.Draft = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// VerifySAP verifica contra SAP la disponibilidad del identificador vigente.
// El resultado queda ligado al texto exacto verificado: si el operador lo
// editó mientras la llamada estaba en vuelo, el resultado se descarta.
func (uc *UseCase) VerifySAP(ctx context.Context, id string) (*dto.VerifySAPResponse, error) {
	s, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrSessionExpired)
	}
	if s.Draft.Phase != wizard.PhaseLogistics {
		return nil, fmt.Errorf("la verificación SAP pertenece a la fase 3: %w", domain.ErrPhaseGate)
	}
	sapID := s.Draft.SAPID
	if sapID == "" {
		return nil, fmt.Errorf("falta el identificador SAP: %w", domain.ErrInvalidInput)
	}
	status, err := uc.logistics.Verify(ctx, sapID)
	if err != nil {
		return nil, err
	}
	s, err = uc.update(ctx, id, func(s *Session) error {
		s.Draft = s.Draft.ApplySAPResult(sapID, status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.VerifySAPResponse{SAPID: s.Draft.SAPID, Status: string(s.Draft.SAPStatus)}, nil
}

// update aplica fn sobre la sesión y normaliza la sesión inexistente o
// caducada a domain.ErrSessionExpired.
func (uc *UseCase) update(ctx context.Context, id string, fn func(s *Session) error) (*Session, error) {
	s, err := uc.store.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrSessionExpired)
	}
	return s, nil
}

// reloadCatalog carga planes y promociones del ámbito y los fija en la sesión
// solo si la generación no cambió entre la carga y la escritura (las cargas
// obsoletas se descartan). Una carga fallida deja listas vacías más aviso.
func (uc *UseCase) reloadCatalog(ctx context.Context, id string, scope wizard.Scope, gen uint64) (*Session, error) {
	plans, planErr := uc.resolver.Plans(ctx, scope)
	promos, promoErr := uc.resolver.Promotions(ctx, scope)

	warning := ""
	if err := errors.Join(planErr, promoErr); err != nil {
		warning = "catálogo no disponible, reintente la carga"
		uc.log.Warn().Err(err).Str("session_id", id).Str("scope", scope.Key()).
			Msg("carga de catálogo fallida para la sesión")
	}

	return uc.update(ctx, id, func(s *Session) error {
		if s.Draft.ScopeGen != gen {
			// El ámbito cambió mientras cargábamos; esta respuesta ya no vale.
			return nil
		}
		s.Plans = plans
		s.Promotions = promos
		s.CatalogWarning = warning
		return nil
	})
}

func pick(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

// view proyecta la sesión al DTO de respuesta. El precio final solo se
// calcula con plan seleccionado presente en el catálogo cargado.
func (uc *UseCase) view(s *Session) *dto.SessionResponse {
	d := s.Draft
	resp := &dto.SessionResponse{
		ID:              s.ID,
		Phase:           int(d.Phase),
		SaleType:        d.SaleType,
		OriginCompanyID: d.OriginCompanyID,
		PlanID:          d.PlanID,
		PromotionID:     d.PromotionID,
		ChipType:        d.ChipType,
		SAPID:           d.SAPID,
		SAPStatus:       string(d.SAPStatus),
		Street:          d.Street,
		City:            d.City,
		PostalCode:      d.PostalCode,
		Province:        d.Province,
		ContactPhone:    d.ContactPhone,
		CatalogWarning:  s.CatalogWarning,
	}
	if d.Customer != nil {
		resp.Customer = &dto.CustomerResponse{
			ID:          d.Customer.ID,
			DocType:     d.Customer.DocType,
			DocNumber:   d.Customer.DocNumber,
			Name:        d.Customer.Name,
			Surname:     d.Customer.Surname,
			Email:       d.Customer.Email,
			Phone:       d.Customer.Phone,
			BirthDate:   d.Customer.BirthDate.Format("2006-01-02"),
			Gender:      d.Customer.Gender,
			Nationality: d.Customer.Nationality,
			CreatedAt:   d.Customer.CreatedAt,
		}
	}
	if d.SaleType == entity.SaleTypePortability {
		p := &dto.PortabilityRequest{
			SubscriberID: d.SubscriberID,
			NumberToPort: d.NumberToPort,
			PIN:          d.PIN,
			OriginMarket: d.OriginMarket,
		}
		if d.PINExpiry != nil {
			p.PINExpiry = d.PINExpiry.Format("2006-01-02")
		}
		resp.Portability = p
	}
	for _, plan := range s.Plans {
		resp.Plans = append(resp.Plans, dto.PlanResponse{
			ID: plan.ID, CompanyID: plan.CompanyID, Name: plan.Name,
			Price: plan.Price, DataGB: plan.DataGB, Minutes: plan.Minutes, SMS: plan.SMS,
		})
	}
	for _, promo := range s.Promotions {
		resp.Promotions = append(resp.Promotions, dto.PromotionResponse{
			ID: promo.ID, CompanyID: promo.CompanyID, Name: promo.Name, Discount: promo.Discount,
		})
	}
	if d.PlanID > 0 {
		if plan := findPlan(s.Plans, d.PlanID); plan != nil {
			price := wizard.FinalPrice(plan.Price, findPromotion(s.Promotions, d.PromotionID))
			resp.FinalPrice = &price
		}
	}
	return resp
}

func findPlan(plans []entity.Plan, id int64) *entity.Plan {
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i]
		}
	}
	return nil
}

func findPromotion(promos []entity.Promotion, id int64) *entity.Promotion {
	if id <= 0 {
		return nil
	}
	for i := range promos {
		if promos[i].ID == id {
			return &promos[i]
		}
	}
	return nil
}
