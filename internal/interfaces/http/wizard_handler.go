package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Altas-api/internal/application/alta"
	"github.com/jhoicas/Altas-api/internal/application/dto"
)

// WizardHandler maneja el ciclo de vida del asistente de alta (protegido).
// Cada sesión es un borrador efímero: todas las mutaciones pasan por el id
// de sesión y una sesión caducada responde 410.
type WizardHandler struct {
	uc           *alta.UseCase
	orchestrator *alta.Orchestrator
}

// NewWizardHandler construye el handler.
func NewWizardHandler(uc *alta.UseCase, orchestrator *alta.Orchestrator) *WizardHandler {
	return &WizardHandler{uc: uc, orchestrator: orchestrator}
}

// Open godoc
// @Summary      Abrir sesión del asistente
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  false  "customer_id opcional para pre-sembrar el cliente"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wizard [post]
func (h *WizardHandler) Open(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.OpenSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Open(c.Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get devuelve el estado completo del borrador.
// GET /api/wizard/:id
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel descarta la sesión sin registrar nada.
// DELETE /api/wizard/:id
func (h *WizardHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BindCustomer resuelve el cliente de la fase 1.
// POST /api/wizard/:id/customer
func (h *WizardHandler) BindCustomer(c *fiber.Ctx) error {
	var in dto.BindCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.BindCustomer(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateOffer godoc
// @Summary      Mutar la oferta de la fase 2
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de sesión"
// @Param        body  body  dto.OfferUpdateRequest true  "campos a mutar"
// @Success      200   {object}  dto.SessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/wizard/{id}/offer [patch]
func (h *WizardHandler) UpdateOffer(c *fiber.Ctx) error {
	var in dto.OfferUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateOffer(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Advance avanza a la siguiente fase si la actual está completa.
// POST /api/wizard/:id/advance
func (h *WizardHandler) Advance(c *fiber.Ctx) error {
	out, err := h.uc.Advance(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Back retrocede a una fase anterior conservando lo introducido.
// POST /api/wizard/:id/back
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	var in dto.BackRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Back(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RefreshCatalog reintenta la carga del catálogo del ámbito vigente.
// POST /api/wizard/:id/catalog/refresh
func (h *WizardHandler) RefreshCatalog(c *fiber.Ctx) error {
	out, err := h.uc.RefreshCatalog(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateLogistics muta los datos de envío de la fase 3.
// PATCH /api/wizard/:id/logistics
func (h *WizardHandler) UpdateLogistics(c *fiber.Ctx) error {
	var in dto.LogisticsUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLogistics(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// VerifySAP godoc
// @Summary      Verificar disponibilidad del identificador SAP vigente
// @Tags         wizard
// @Produce      json
// @Param        id  path  string  true  "id de sesión"
// @Success      200  {object}  dto.VerifySAPResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/wizard/{id}/verify-sap [post]
func (h *WizardHandler) VerifySAP(c *fiber.Ctx) error {
	out, err := h.uc.VerifySAP(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar la venta del borrador completo
// @Tags         wizard
// @Produce      json
// @Param        id  path  string  true  "id de sesión"
// @Success      201  {object}  dto.SubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	out, err := h.orchestrator.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
