package dto

import "time"

// SearchCustomerRequest búsqueda de cliente por documento.
type SearchCustomerRequest struct {
	DocType   string `json:"doc_type" validate:"required,oneof=DNI NIE PASSPORT"`
	DocNumber string `json:"doc_number" validate:"required"`
}

// CreateCustomerRequest datos para crear un cliente nuevo.
// BirthDate se espera en formato "2006-01-02".
type CreateCustomerRequest struct {
	DocType     string `json:"doc_type" validate:"required,oneof=DNI NIE PASSPORT"`
	DocNumber   string `json:"doc_number" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F X"`
	Nationality string `json:"nationality" validate:"required"`
}

// CustomerResponse cliente resuelto.
type CustomerResponse struct {
	ID          string    `json:"id"`
	DocType     string    `json:"doc_type"`
	DocNumber   string    `json:"doc_number"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	BirthDate   string    `json:"birth_date"`
	Gender      string    `json:"gender,omitempty"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}
