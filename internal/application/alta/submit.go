package alta

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

// Orchestrator ejecuta el cierre del asistente:
//
//	precondiciones → revalidar oferta → correspondencia SAP → venta + portabilidad (tx)
//
// El registro logístico se crea ANTES de escribir la venta: si SAP falla no
// hay nada que deshacer. Si la escritura de la venta falla después de crear
// la correspondencia, el contrato SAP no permite borrarla; el error se
// devuelve como domain.ErrPartialCommit con la referencia huérfana para
// resolución manual.
type Orchestrator struct {
	store     SessionStore
	resolver  *catalog.Resolver
	logistics LogisticsClient
	tx        SaleTxRunner
	listings  SaleListingInvalidator
	log       *logger.Logger
}

// NewOrchestrator construye el orquestador de envío con todas sus dependencias.
func NewOrchestrator(
	store SessionStore,
	resolver *catalog.Resolver,
	logistics LogisticsClient,
	tx SaleTxRunner,
	listings SaleListingInvalidator,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:     store,
		resolver:  resolver,
		logistics: logistics,
		tx:        tx,
		listings:  listings,
		log:       log,
	}
}

// Submit cierra la sesión registrando la venta. Solo es posible desde la
// fase 3 con todas las puertas cumplidas; la sesión se destruye únicamente
// tras un cierre con éxito.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string) (*dto.SubmitResponse, error) {
	s, err := o.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("sesión %s: %w", sessionID, domain.ErrSessionExpired)
	}
	d := s.Draft
	if err := d.CanSubmit(); err != nil {
		return nil, err
	}

	// Revalidar plan y promoción contra el catálogo: pudieron desactivarse o
	// cambiar de ámbito desde que se seleccionaron.
	plan, err := o.resolver.PlanInScope(ctx, d.Scope(), d.PlanID)
	if err != nil {
		return nil, err
	}
	var promo *entity.Promotion
	if d.PromotionID > 0 {
		if promo, err = o.resolver.PromotionInScope(ctx, d.Scope(), d.PromotionID); err != nil {
			return nil, err
		}
	}
	finalPrice := wizard.FinalPrice(plan.Price, promo)

	var correspondenceRef *string
	if d.ChipType == entity.ChipSIM {
		record, err := o.logistics.CreateCorrespondence(ctx, entity.CorrespondenceInput{
			SAPID:        d.SAPID,
			Recipient:    d.Customer.FullName(),
			Street:       d.Street,
			City:         d.City,
			PostalCode:   d.PostalCode,
			Province:     d.Province,
			ContactPhone: d.ContactPhone,
		})
		if err != nil {
			return nil, err
		}
		correspondenceRef = &record.ID
	}

	sale := &entity.Sale{
		ID:                uuid.New().String(),
		CustomerID:        d.Customer.ID,
		PlanID:            d.PlanID,
		OriginCompanyID:   d.OriginCompanyID,
		ChipType:          d.ChipType,
		SaleType:          d.SaleType,
		FinalPrice:        finalPrice,
		CorrespondenceRef: correspondenceRef,
		CreatedByUserID:   s.UserID,
		CreatedAt:         time.Now(),
	}
	if d.PromotionID > 0 {
		promoID := d.PromotionID
		sale.PromotionID = &promoID
	}

	err = o.tx.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if d.SaleType == entity.SaleTypePortability {
			return saleRepo.CreatePortability(ctx, &entity.Portability{
				SaleID:          sale.ID,
				OriginCompanyID: d.OriginCompanyID,
				SubscriberID:    d.SubscriberID,
				NumberToPort:    d.NumberToPort,
				PIN:             d.PIN,
				PINExpiry:       d.PINExpiry,
				OriginMarket:    d.OriginMarket,
			})
		}
		return nil
	})
	if err != nil {
		if correspondenceRef != nil {
			o.log.Error().Err(err).
				Str("session_id", sessionID).
				Str("correspondence_ref", *correspondenceRef).
				Msg("venta no persistida con correspondencia SAP ya creada")
			return nil, fmt.Errorf("correspondencia %s sin venta asociada (%v): %w",
				*correspondenceRef, err, domain.ErrPartialCommit)
		}
		return nil, err
	}

	if err := o.store.Delete(ctx, sessionID); err != nil {
		o.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo cerrar la sesión tras el alta")
	}
	o.listings.InvalidateSaleListings(ctx)

	o.log.Info().
		Str("sale_id", sale.ID).
		Str("sale_type", sale.SaleType).
		Str("final_price", finalPrice.StringFixed(2)).
		Msg("alta registrada")

	return &dto.SubmitResponse{
		SaleID:            sale.ID,
		FinalPrice:        finalPrice,
		CorrespondenceRef: correspondenceRef,
	}, nil
}
