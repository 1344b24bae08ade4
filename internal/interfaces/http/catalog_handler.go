package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Altas-api/internal/application/catalog"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
)

// CatalogHandler expone el catálogo comercial por ámbito (protegido).
// Una carga fallida de planes o promociones no es un error HTTP: se devuelve
// el listado vacío con Warning y el cliente decide cuándo reintentar.
type CatalogHandler struct {
	resolver *catalog.Resolver

	// internalCarrierID es la compañía propia: el ámbito de las líneas nuevas.
	internalCarrierID int64
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(resolver *catalog.Resolver, internalCarrierID int64) *CatalogHandler {
	return &CatalogHandler{resolver: resolver, internalCarrierID: internalCarrierID}
}

// Companies lista los operadores activos.
// GET /api/catalog/companies
func (h *CatalogHandler) Companies(c *fiber.Ctx) error {
	companies, err := h.resolver.Companies(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := dto.CompanyListResponse{Items: []dto.CompanyResponse{}}
	for _, co := range companies {
		out.Items = append(out.Items, dto.CompanyResponse{ID: co.ID, Name: co.Name, Country: co.Country})
	}
	return c.JSON(out)
}

// Plans godoc
// @Summary      Planes del ámbito pedido
// @Tags         catalog
// @Produce      json
// @Param        sale_type          query  string  true   "NEW_LINE | PORTABILITY"
// @Param        origin_company_id  query  int     false  "operador de origen (portabilidad)"
// @Success      200  {object}  dto.PlanListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog/plans [get]
func (h *CatalogHandler) Plans(c *fiber.Ctx) error {
	scope, err := h.scopeFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	plans, err := h.resolver.Plans(c.Context(), scope)
	out := dto.PlanListResponse{Items: []dto.PlanResponse{}}
	if err != nil {
		if !errors.Is(err, domain.ErrTransient) {
			return writeError(c, err)
		}
		out.Warning = "catálogo no disponible, reintente la carga"
	}
	for _, p := range plans {
		out.Items = append(out.Items, dto.PlanResponse{
			ID: p.ID, CompanyID: p.CompanyID, Name: p.Name,
			Price: p.Price, DataGB: p.DataGB, Minutes: p.Minutes, SMS: p.SMS,
		})
	}
	return c.JSON(out)
}

// Promotions lista las promociones del ámbito pedido; misma semántica de
// degradación que Plans.
// GET /api/catalog/promotions
func (h *CatalogHandler) Promotions(c *fiber.Ctx) error {
	scope, err := h.scopeFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	promos, err := h.resolver.Promotions(c.Context(), scope)
	out := dto.PromotionListResponse{Items: []dto.PromotionResponse{}}
	if err != nil {
		if !errors.Is(err, domain.ErrTransient) {
			return writeError(c, err)
		}
		out.Warning = "catálogo no disponible, reintente la carga"
	}
	for _, p := range promos {
		out.Items = append(out.Items, dto.PromotionResponse{
			ID: p.ID, CompanyID: p.CompanyID, Name: p.Name, Discount: p.Discount,
		})
	}
	return c.JSON(out)
}

// scopeFromQuery deriva el ámbito comercial de los query params. Una línea
// nueva siempre apunta a la compañía propia; la portabilidad exige operador
// de origen.
func (h *CatalogHandler) scopeFromQuery(c *fiber.Ctx) (wizard.Scope, error) {
	saleType := c.Query("sale_type")
	switch saleType {
	case entity.SaleTypeNewLine:
		return wizard.Scope{SaleType: saleType, CompanyID: h.internalCarrierID}, nil
	case entity.SaleTypePortability:
		originID := int64(c.QueryInt("origin_company_id"))
		if originID <= 0 {
			return wizard.Scope{}, fmt.Errorf("origin_company_id requerido para portabilidad: %w", domain.ErrInvalidInput)
		}
		return wizard.Scope{SaleType: saleType, CompanyID: originID}, nil
	default:
		return wizard.Scope{}, fmt.Errorf("sale_type debe ser NEW_LINE o PORTABILITY: %w", domain.ErrInvalidInput)
	}
}
