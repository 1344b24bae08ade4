// Package pdf implementa el resumen imprimible del alta para la tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de alta  │  N° de venta + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + documento + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OFERTA: Tipo de venta | Plan | Promoción | Precio final    │
//	│  PORTABILIDAD: operador de origen + número (si aplica)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOGÍSTICA: chip + referencia de correspondencia SAP        │
//	│  FOOTER: QR con el id de venta + leyenda                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appsale "github.com/jhoicas/Altas-api/internal/application/sale"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appsale.SummaryPDFGenerator = (*SaleSummaryGenerator)(nil)

// SaleSummaryGenerator implementa sale.SummaryPDFGenerator usando Maroto v2.
type SaleSummaryGenerator struct{}

// NewSaleSummaryGenerator construye el generador.
func NewSaleSummaryGenerator() *SaleSummaryGenerator { return &SaleSummaryGenerator{} }

// Generate genera el PDF del resumen y devuelve sus bytes.
func (g *SaleSummaryGenerator) Generate(s appsale.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de alta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(s.Sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(s.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(offerRows(s)...)
	if s.Portability != nil {
		m.AddRows(portabilityRow(s))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(logisticsRow(s.Sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(s.Sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y n° de venta + fecha (der).
func headerRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RESUMEN DE ALTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de venta en tienda", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: titular del alta.
func customerRow(customer *entity.Customer) core.Row {
	name, doc, contact := "—", "—", "—"
	if customer != nil {
		name = customer.FullName()
		doc = customer.DocType + " " + customer.DocNumber
		contact = fmt.Sprintf("Email: %s   |   Tel: %s",
			nonEmpty(customer.Email, "—"), nonEmpty(customer.Phone, "—"))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("TITULAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(doc+"   |   "+contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// offerRows: oferta contratada y precio final.
func offerRows(s appsale.Summary) []core.Row {
	saleType := "Línea nueva"
	if s.Sale.SaleType == entity.SaleTypePortability {
		saleType = "Portabilidad"
	}
	planName := "—"
	if s.Plan != nil {
		planName = s.Plan.Name
	}
	promoName := "Sin promoción"
	if s.Promotion != nil {
		promoName = s.Promotion.Name
	}
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New("OFERTA", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(fmt.Sprintf("%s   |   Plan: %s   |   %s", saleType, planName, promoName),
					props.Text{Size: 9, Top: 7}),
			),
		),
		row.New(10).Add(
			col.New(8),
			col.New(4).Add(
				text.New("PRECIO FINAL: "+s.Sale.FinalPrice.StringFixed(2)+" €", props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right,
					Color: colorPrimary, Top: 2,
				}),
			),
		),
	}
}

// portabilityRow: datos de la portabilidad.
func portabilityRow(s appsale.Summary) core.Row {
	origin := nonEmpty(s.CompanyName, fmt.Sprintf("operador %d", s.Portability.OriginCompanyID))
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PORTABILIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Operador de origen: %s   |   Número: %s   |   Abonado: %s",
				origin, s.Portability.NumberToPort, s.Portability.SubscriberID),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// logisticsRow: chip y referencia de correspondencia.
func logisticsRow(sale *entity.Sale) core.Row {
	chip := "SIM física"
	if sale.ChipType == entity.ChipESIM {
		chip = "eSIM (sin envío)"
	}
	ref := "—"
	if sale.CorrespondenceRef != nil {
		ref = *sale.CorrespondenceRef
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("LOGÍSTICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Chip: %s   |   Correspondencia SAP: %s", chip, ref),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// footerRow: QR con el id de venta + leyenda.
func footerRow(sale *entity.Sale) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para localizar\nesta venta en el sistema.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Resumen sin validez contractual;\nel contrato se entrega por separado.", props.Text{
				Size: 8, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
