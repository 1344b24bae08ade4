package entity

// CorrespondenceInput son los datos con los que se crea el registro
// logístico en el sistema SAP para una venta con SIM física.
type CorrespondenceInput struct {
	SAPID        string
	Recipient    string // nombre completo del cliente, normalizado
	Street       string
	City         string
	PostalCode   string
	Province     string
	ContactPhone string
}

// CorrespondenceRecord es el registro logístico que devuelve SAP tras crearlo.
type CorrespondenceRecord struct {
	ID           string
	SAPID        string
	Recipient    string
	Street       string
	City         string
	PostalCode   string
	Province     string
	ContactPhone string
}
