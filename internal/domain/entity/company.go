package entity

// Company representa un operador (mercado de origen) del catálogo de referencia.
// Los IDs son numéricos porque vienen del catálogo BSS upstream.
// Una compañía concreta (config WIZARD_INTERNAL_CARRIER_ID) es el operador
// propio, fijado como origen en toda alta de línea nueva.
type Company struct {
	ID      int64
	Name    string
	Country string
	Active  bool
}
