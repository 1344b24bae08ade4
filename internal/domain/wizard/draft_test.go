package wizard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
)

const testInternalCarrierID int64 = 1

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:        "11111111-1111-1111-1111-111111111111",
		DocType:   entity.DocTypeDNI,
		DocNumber: "12345678",
		Name:      "ANA",
		Surname:   "GARCIA LOPEZ",
		Email:     "ana@example.com",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

// draftInOffer devuelve un borrador ya en fase 2 con cliente resuelto.
func draftInOffer(t *testing.T) wizard.Draft {
	t.Helper()
	d := wizard.NewDraft(testInternalCarrierID).BindCustomer(testCustomer())
	d, err := d.Advance()
	require.NoError(t, err)
	require.Equal(t, wizard.PhaseOffer, d.Phase)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial y fase 1
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDraft_EstadoInicial(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID)

	assert.Equal(t, wizard.PhaseCustomer, d.Phase)
	assert.Equal(t, entity.SaleTypeNewLine, d.SaleType)
	assert.Equal(t, testInternalCarrierID, d.OriginCompanyID,
		"una línea nueva siempre nace con el operador propio como origen")
	assert.Equal(t, entity.ChipSIM, d.ChipType)
	assert.Equal(t, wizard.SAPUnverified, d.SAPStatus)
}

func TestAdvance_Fase1SinCliente_Bloqueado(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID)
	_, err := d.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin cliente resuelto no se sale de la fase 1")
}

func TestAdvance_Fase1ConCliente_PasaAFase2(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID).BindCustomer(testCustomer())
	d, err := d.Advance()
	require.NoError(t, err)
	assert.Equal(t, wizard.PhaseOffer, d.Phase)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutadores de oferta y ámbito
// ──────────────────────────────────────────────────────────────────────────────

func TestSetSaleType_Portabilidad_LimpiaSeleccionYOrigen(t *testing.T) {
	d := draftInOffer(t).SetPlan(5).SetPromotion(7)
	genBefore := d.ScopeGen

	d, err := d.SetSaleType(entity.SaleTypePortability)
	require.NoError(t, err)

	assert.Zero(t, d.PlanID, "cambiar el tipo de venta limpia el plan")
	assert.Zero(t, d.PromotionID, "cambiar el tipo de venta limpia la promoción")
	assert.Zero(t, d.OriginCompanyID, "en portabilidad el origen queda pendiente de selección")
	assert.Greater(t, d.ScopeGen, genBefore, "el cambio de ámbito avanza la generación")
}

func TestSetSaleType_MismoValor_NoLimpia(t *testing.T) {
	d := draftInOffer(t).SetPlan(5)
	d, err := d.SetSaleType(entity.SaleTypeNewLine)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.PlanID, "repetir el mismo tipo de venta no toca la selección")
}

func TestSetSaleType_Invalido(t *testing.T) {
	_, err := draftInOffer(t).SetSaleType("RENEWAL")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetSaleType_VueltaANuevaLinea_FijaOperadorPropio(t *testing.T) {
	d := draftInOffer(t)
	d, err := d.SetSaleType(entity.SaleTypePortability)
	require.NoError(t, err)
	d, err = d.SetOriginCompany(3)
	require.NoError(t, err)

	d, err = d.SetSaleType(entity.SaleTypeNewLine)
	require.NoError(t, err)
	assert.Equal(t, testInternalCarrierID, d.OriginCompanyID)
}

func TestSetOriginCompany_CambioLimpiaPlanYPromocion(t *testing.T) {
	d := draftInOffer(t)
	d, err := d.SetSaleType(entity.SaleTypePortability)
	require.NoError(t, err)
	d, err = d.SetOriginCompany(3)
	require.NoError(t, err)
	d = d.SetPlan(5).SetPromotion(9)

	d, err = d.SetOriginCompany(4)
	require.NoError(t, err)
	assert.Zero(t, d.PlanID)
	assert.Zero(t, d.PromotionID)
}

func TestSetOriginCompany_EnLineaNueva_NoAplica(t *testing.T) {
	_, err := draftInOffer(t).SetOriginCompany(3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el selector de origen no aplica a línea nueva")
}

func TestSetOriginCompany_OperadorPropio_Rechazado(t *testing.T) {
	d := draftInOffer(t)
	d, err := d.SetSaleType(entity.SaleTypePortability)
	require.NoError(t, err)
	_, err = d.SetOriginCompany(testInternalCarrierID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una portabilidad no puede originarse en el operador propio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Puerta de fase 2
// ──────────────────────────────────────────────────────────────────────────────

func TestGateOffer_LineaNueva_SoloExigePlan(t *testing.T) {
	d := draftInOffer(t)
	assert.ErrorIs(t, d.GateOffer(), domain.ErrInvalidInput, "sin plan no se avanza")

	d = d.SetPlan(5)
	assert.NoError(t, d.GateOffer(), "línea nueva con plan avanza sin datos de portabilidad")
}

func TestGateOffer_Portabilidad_ExigeDatosCompletos(t *testing.T) {
	d := draftInOffer(t)
	d, err := d.SetSaleType(entity.SaleTypePortability)
	require.NoError(t, err)

	assert.ErrorIs(t, d.GateOffer(), domain.ErrInvalidInput, "sin compañía de origen")

	d, err = d.SetOriginCompany(3)
	require.NoError(t, err)
	assert.ErrorIs(t, d.GateOffer(), domain.ErrInvalidInput, "sin plan")

	d = d.SetPlan(5)
	assert.ErrorIs(t, d.GateOffer(), domain.ErrInvalidInput, "sin abonado de origen")

	d = d.SetPortabilityDetails("SPN1", "", "", nil, "")
	assert.ErrorIs(t, d.GateOffer(), domain.ErrInvalidInput, "sin número a portar")

	d = d.SetPortabilityDetails("SPN1", "3511234567", "", nil, "")
	assert.NoError(t, d.GateOffer())
}

// ──────────────────────────────────────────────────────────────────────────────
// SAP y puerta de fase 3
// ──────────────────────────────────────────────────────────────────────────────

func TestSetSAPID_EditarTexto_InvalidaVerificacion(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID).SetSAPID("SAP1")
	d = d.ApplySAPResult("SAP1", wizard.SAPAvailable)
	require.Equal(t, wizard.SAPAvailable, d.SAPStatus)

	d = d.SetSAPID("SAP2")
	assert.Equal(t, wizard.SAPUnverified, d.SAPStatus,
		"editar el SAP id invalida la verificación anterior")
}

func TestSetSAPID_MismoTexto_ConservaVerificacion(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID).SetSAPID("SAP1")
	d = d.ApplySAPResult("SAP1", wizard.SAPAvailable)
	d = d.SetSAPID("SAP1")
	assert.Equal(t, wizard.SAPAvailable, d.SAPStatus)
}

func TestApplySAPResult_TextoObsoleto_SeDescarta(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID).SetSAPID("SAP1")
	d = d.SetSAPID("SAP2")

	// Llega tarde la respuesta de la verificación de SAP1.
	d = d.ApplySAPResult("SAP1", wizard.SAPAvailable)
	assert.Equal(t, wizard.SAPUnverified, d.SAPStatus,
		"una verificación para un texto ya editado no debe aplicarse")
}

func TestGateLogistics_ESIM_SiemprePasa(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID)
	d, err := d.SetChipType(entity.ChipESIM)
	require.NoError(t, err)
	assert.NoError(t, d.GateLogistics(), "eSIM no requiere logística alguna")
}

func TestGateLogistics_SIM_ExigeSAPDisponibleYTelefono(t *testing.T) {
	d := wizard.NewDraft(testInternalCarrierID).SetSAPID("SAP1")
	assert.ErrorIs(t, d.GateLogistics(), domain.ErrInvalidInput, "sin verificar no se pasa")

	d = d.ApplySAPResult("SAP1", wizard.SAPTaken)
	assert.ErrorIs(t, d.GateLogistics(), domain.ErrInvalidInput, "SAP ocupado no pasa")

	d = d.ApplySAPResult("SAP1", wizard.SAPAvailable)
	assert.ErrorIs(t, d.GateLogistics(), domain.ErrInvalidInput, "falta el teléfono de contacto")

	d = d.SetContactPhone("600000000")
	assert.NoError(t, d.GateLogistics())
}

// ──────────────────────────────────────────────────────────────────────────────
// Navegación entre fases
// ──────────────────────────────────────────────────────────────────────────────

func TestBack_ConservaTodosLosValores(t *testing.T) {
	d := draftInOffer(t).SetPlan(5).SetPromotion(2)
	d, err := d.Advance()
	require.NoError(t, err)
	require.Equal(t, wizard.PhaseLogistics, d.Phase)

	d = d.SetSAPID("SAP9").SetContactPhone("611111111")

	// Fase 3 → 2 → 3: nada se resetea.
	d, err = d.Back(wizard.PhaseOffer)
	require.NoError(t, err)
	d, err = d.Advance()
	require.NoError(t, err)

	assert.Equal(t, int64(5), d.PlanID)
	assert.Equal(t, int64(2), d.PromotionID)
	assert.Equal(t, "SAP9", d.SAPID)
	assert.Equal(t, "611111111", d.ContactPhone)
}

func TestBack_HaciaDelante_Rechazado(t *testing.T) {
	d := draftInOffer(t)
	_, err := d.Back(wizard.PhaseLogistics)
	assert.ErrorIs(t, err, domain.ErrPhaseGate)
}

func TestAdvance_DesdeFase3_NoExisteFasePosterior(t *testing.T) {
	d := draftInOffer(t).SetPlan(5)
	d, err := d.Advance()
	require.NoError(t, err)
	_, err = d.Advance()
	assert.ErrorIs(t, err, domain.ErrPhaseGate, "desde la fase 3 el cierre es el envío, no Advance")
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones de envío
// ──────────────────────────────────────────────────────────────────────────────

func TestCanSubmit_ESIMEnResumen(t *testing.T) {
	d := draftInOffer(t).SetPlan(5)
	d, err := d.SetChipType(entity.ChipESIM)
	require.NoError(t, err)
	d, err = d.Advance()
	require.NoError(t, err)

	assert.NoError(t, d.CanSubmit())
}

func TestCanSubmit_FueraDeFase3_Bloqueado(t *testing.T) {
	d := draftInOffer(t).SetPlan(5)
	assert.ErrorIs(t, d.CanSubmit(), domain.ErrPhaseGate)
}

func TestCanSubmit_SIMNoVerificada_Bloqueado(t *testing.T) {
	d := draftInOffer(t).SetPlan(5)
	d, err := d.Advance()
	require.NoError(t, err)
	d = d.SetSAPID("SAP1").SetContactPhone("600000000")

	assert.ErrorIs(t, d.CanSubmit(), domain.ErrInvalidInput,
		"con SIM física el envío exige SAP verificado como disponible")
}
