package wizard

import "fmt"

// Scope es el ámbito comercial (tipo de venta + compañía de origen) que
// determina qué planes y promociones son seleccionables. Se usa como clave
// de caché del resolver de catálogo.
type Scope struct {
	SaleType  string
	CompanyID int64
}

// Key devuelve la clave estable del scope para cachés y logs.
func (s Scope) Key() string {
	return fmt.Sprintf("%s:%d", s.SaleType, s.CompanyID)
}
