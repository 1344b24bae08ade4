package entity

import "time"

// Tipos de documento de identidad aceptados.
const (
	DocTypeDNI      = "DNI"
	DocTypeNIE      = "NIE"
	DocTypePassport = "PASSPORT"
)

// Customer representa un cliente identificado por documento.
// Inmutable una vez resuelto: el asistente de alta solo lo busca o lo crea,
// nunca lo edita. Los nombres se guardan en mayúsculas y el email en
// minúsculas (normalización en el caso de uso de creación).
type Customer struct {
	ID          string
	DocType     string
	DocNumber   string
	Name        string
	Surname     string
	Email       string
	Phone       string
	BirthDate   time.Time
	Gender      string
	Nationality string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName devuelve nombre y apellidos tal como se imprimen en la
// correspondencia SAP.
func (c Customer) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
