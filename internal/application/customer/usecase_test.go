package customer_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Altas-api/internal/application/customer"
	"github.com/jhoicas/Altas-api/internal/application/dto"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
)

// fakeCustomerRepo repositorio en memoria indexado por documento.
type fakeCustomerRepo struct {
	byDoc map[string]*entity.Customer
	byID  map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byDoc: map[string]*entity.Customer{}, byID: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.byDoc[c.DocType+":"+c.DocNumber] = c
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.byID[id], nil
}

func (f *fakeCustomerRepo) GetByDocument(_ context.Context, docType, docNumber string) (*entity.Customer, error) {
	return f.byDoc[docType+":"+docNumber], nil
}

func newUseCase() (*customer.UseCase, *fakeCustomerRepo) {
	repo := newFakeCustomerRepo()
	return customer.NewUseCase(repo, validator.New()), repo
}

func validCreate() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		DocType:     entity.DocTypeDNI,
		DocNumber:   "12345678Z",
		Name:        "José María",
		Surname:     "García Pérez",
		Email:       "Jose.Garcia@Example.COM",
		Phone:       "600111222",
		BirthDate:   "1990-05-17",
		Gender:      "M",
		Nationality: "España",
	}
}

func TestSearch_ClienteInexistenteDevuelveNotFound(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Search(context.Background(), dto.SearchCustomerRequest{
		DocType:   entity.DocTypeDNI,
		DocNumber: "00000000A",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_DocTypeInvalidoRechazado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Search(context.Background(), dto.SearchCustomerRequest{
		DocType:   "CEDULA",
		DocNumber: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_NormalizaNombresYEmail(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "JOSE MARIA", resp.Name)
	assert.Equal(t, "GARCIA PEREZ", resp.Surname)
	assert.Equal(t, "jose.garcia@example.com", resp.Email)
	assert.Equal(t, "ESPANA", resp.Nationality)
	assert.Equal(t, "1990-05-17", resp.BirthDate)
	assert.NotEmpty(t, resp.ID)
}

func TestCreate_DocumentoDuplicadoRechazado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	// Mismo documento con espacios y minúsculas: se canoniza igual.
	in := validCreate()
	in.DocNumber = " 12345678z "
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_FechaNacimientoInvalida(t *testing.T) {
	uc, _ := newUseCase()

	in := validCreate()
	in.BirthDate = "17/05/1990"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_EncuentraTrasCrear(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validCreate())
	require.NoError(t, err)

	found, err := uc.Search(ctx, dto.SearchCustomerRequest{
		DocType:   entity.DocTypeDNI,
		DocNumber: "12345678z",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetByID(context.Background(), "b4b2e6ce-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
