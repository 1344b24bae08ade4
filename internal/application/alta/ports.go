package alta

import (
	"context"
	"time"

	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
)

// Session es el estado vivo de un alta en curso: el borrador más el catálogo
// resuelto para su ámbito. Vive solo en el session store; nada del asistente
// toca la base de datos hasta el Submit.
type Session struct {
	ID     string
	UserID string
	Draft  wizard.Draft

	// Catálogo del ámbito vigente. CatalogWarning queda fijado cuando la
	// última carga falló: la UI muestra listas vacías con aviso y el
	// reintento es manual.
	Plans          []entity.Plan
	Promotions     []entity.Promotion
	CatalogWarning string

	CreatedAt time.Time
}

// SessionStore define el puerto del almacén de sesiones del asistente.
// Las sesiones caducan por TTL; una sesión caducada o cancelada se comporta
// como inexistente: Get y Update devuelven (nil, nil).
type SessionStore interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Update aplica fn sobre la sesión de forma atómica y devuelve el estado
	// resultante. Si fn devuelve error la sesión queda como estaba.
	Update(ctx context.Context, id string, fn func(s *Session) error) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// LogisticsClient define el puerto hacia el sistema logístico SAP.
// Verify consulta la disponibilidad de un identificador; CreateCorrespondence
// da de alta el registro de envío de la SIM física.
type LogisticsClient interface {
	Verify(ctx context.Context, sapID string) (wizard.SAPStatus, error)
	CreateCorrespondence(ctx context.Context, in entity.CorrespondenceInput) (*entity.CorrespondenceRecord, error)
}

// SaleTxRunner ejecuta la escritura de la venta y su portabilidad dentro de
// una única transacción.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// SaleListingInvalidator invalida el listado cacheado de ventas tras un alta.
type SaleListingInvalidator interface {
	InvalidateSaleListings(ctx context.Context)
}
