// Package customer resuelve la identidad del cliente en la fase 1 del
// asistente de alta: búsqueda por documento y creación con normalización.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/repository"
	"github.com/jhoicas/Altas-api/pkg/textnorm"
)

// UseCase casos de uso de clientes: búsqueda por documento y alta.
type UseCase struct {
	repo     repository.CustomerRepository
	validate *validator.Validate
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.CustomerRepository, validate *validator.Validate) *UseCase {
	return &UseCase{repo: repo, validate: validate}
}

// Search busca un cliente por tipo y número de documento.
// Devuelve domain.ErrNotFound si no existe; el asistente ofrece entonces el
// formulario de alta.
func (uc *UseCase) Search(ctx context.Context, in dto.SearchCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("búsqueda de cliente (%v): %w", err, domain.ErrInvalidInput)
	}
	customer, err := uc.repo.GetByDocument(ctx, in.DocType, normalizeDocNumber(in.DocNumber))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s %s: %w", in.DocType, in.DocNumber, domain.ErrNotFound)
	}
	return toCustomerResponse(customer), nil
}

// Create crea un cliente nuevo normalizando nombres (mayúsculas, sin
// diacríticos) y email (minúsculas). Devuelve domain.ErrDuplicate si el
// documento ya está registrado.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("alta de cliente (%v): %w", err, domain.ErrInvalidInput)
	}
	docNumber := normalizeDocNumber(in.DocNumber)
	existing, err := uc.repo.GetByDocument(ctx, in.DocType, docNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("documento %s %s ya registrado: %w", in.DocType, docNumber, domain.ErrDuplicate)
	}
	birthDate, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("fecha de nacimiento %q: %w", in.BirthDate, domain.ErrInvalidInput)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		DocType:     in.DocType,
		DocNumber:   docNumber,
		Name:        textnorm.UpperName(in.Name),
		Surname:     textnorm.UpperName(in.Surname),
		Email:       textnorm.LowerEmail(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		BirthDate:   birthDate,
		Gender:      in.Gender,
		Nationality: textnorm.UpperName(in.Nationality),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por su id.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return toCustomerResponse(customer), nil
}

// normalizeDocNumber canoniza el número de documento tal como lo guarda el
// BSS: sin espacios y en mayúsculas.
func normalizeDocNumber(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:          c.ID,
		DocType:     c.DocType,
		DocNumber:   c.DocNumber,
		Name:        c.Name,
		Surname:     c.Surname,
		Email:       c.Email,
		Phone:       c.Phone,
		BirthDate:   c.BirthDate.Format("2006-01-02"),
		Gender:      c.Gender,
		Nationality: c.Nationality,
		CreatedAt:   c.CreatedAt,
	}
}
