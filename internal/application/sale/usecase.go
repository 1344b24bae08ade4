// Package sale expone la lectura de ventas registradas: listado paginado con
// caché, detalle y resumen PDF.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

// ListingCache define el puerto de caché de listados de ventas. El alta de
// una venta nueva lo invalida completo (ver el orquestador del asistente).
type ListingCache interface {
	GetList(ctx context.Context, limit, offset int) (*dto.SaleListResponse, bool)
	SetList(ctx context.Context, limit, offset int, resp *dto.SaleListResponse, ttl time.Duration)
}

// Summary son los datos del resumen PDF de una venta.
type Summary struct {
	Sale        *entity.Sale
	Customer    *entity.Customer
	Plan        *entity.Plan
	Promotion   *entity.Promotion // nil si no hay
	Portability *entity.Portability
	CompanyName string // compañía de origen
}

// SummaryPDFGenerator genera el resumen PDF de un alta.
type SummaryPDFGenerator interface {
	Generate(s Summary) ([]byte, error)
}

// UseCase casos de uso de lectura de ventas.
type UseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	planRepo     repository.PlanRepository
	promoRepo    repository.PromotionRepository
	companyRepo  repository.CompanyRepository
	cache        ListingCache
	pdf          SummaryPDFGenerator
	listTTL      time.Duration
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	planRepo repository.PlanRepository,
	promoRepo repository.PromotionRepository,
	companyRepo repository.CompanyRepository,
	cache ListingCache,
	pdf SummaryPDFGenerator,
	listTTL time.Duration,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		planRepo:     planRepo,
		promoRepo:    promoRepo,
		companyRepo:  companyRepo,
		cache:        cache,
		pdf:          pdf,
		listTTL:      listTTL,
		log:          log,
	}
}

// List lista ventas con paginación, sirviendo de caché cuando hay entrada.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	if cached, ok := uc.cache.GetList(ctx, page.Limit, page.Offset); ok {
		return cached, nil
	}
	sales, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s, nil))
	}
	resp := &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	uc.cache.SetList(ctx, page.Limit, page.Offset, resp, uc.listTTL)
	return resp, nil
}

// Get devuelve una venta con su sub-registro de portabilidad si lo tiene.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, porta, err := uc.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, porta), nil
}

// SummaryPDF genera el resumen PDF del alta para su impresión en tienda.
func (uc *UseCase) SummaryPDF(ctx context.Context, id string) ([]byte, error) {
	sale, porta, err := uc.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, err
	}
	plan, err := uc.planRepo.GetByID(ctx, sale.PlanID)
	if err != nil {
		return nil, err
	}
	var promo *entity.Promotion
	if sale.PromotionID != nil {
		if promo, err = uc.promoRepo.GetByID(ctx, *sale.PromotionID); err != nil {
			return nil, err
		}
	}
	companyName := ""
	if company, err := uc.companyRepo.GetByID(ctx, sale.OriginCompanyID); err == nil && company != nil {
		companyName = company.Name
	}
	return uc.pdf.Generate(Summary{
		Sale:        sale,
		Customer:    customer,
		Plan:        plan,
		Promotion:   promo,
		Portability: porta,
		CompanyName: companyName,
	})
}

func (uc *UseCase) fetch(ctx context.Context, id string) (*entity.Sale, *entity.Portability, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	porta, err := uc.saleRepo.GetPortability(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return sale, porta, nil
}

func toSaleResponse(s *entity.Sale, porta *entity.Portability) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		PlanID:            s.PlanID,
		PromotionID:       s.PromotionID,
		OriginCompanyID:   s.OriginCompanyID,
		ChipType:          s.ChipType,
		SaleType:          s.SaleType,
		FinalPrice:        s.FinalPrice,
		CorrespondenceRef: s.CorrespondenceRef,
		CreatedAt:         s.CreatedAt,
	}
	if porta != nil {
		resp.Portability = &dto.PortabilityResponse{
			OriginCompanyID: porta.OriginCompanyID,
			SubscriberID:    porta.SubscriberID,
			NumberToPort:    porta.NumberToPort,
			OriginMarket:    porta.OriginMarket,
		}
	}
	return resp
}
