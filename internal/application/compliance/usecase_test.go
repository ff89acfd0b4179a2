package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcompliance "github.com/tu-usuario/gestion-pyme/internal/application/compliance"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.CompanyID == companyID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	delete(f.customers, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.TaxProfile // por customerID
}

func (f *fakeProfileRepo) Upsert(p *entity.TaxProfile) error {
	f.profiles[p.CustomerID] = p
	return nil
}

func (f *fakeProfileRepo) GetByCustomer(customerID string) (*entity.TaxProfile, error) {
	return f.profiles[customerID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID  = "co-1"
	customerID = "cu-1"
)

func buildUseCase(customer *entity.Customer, profile *entity.TaxProfile) *appcompliance.UseCase {
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	if customer != nil {
		customers.customers[customer.ID] = customer
	}
	profiles := &fakeProfileRepo{profiles: map[string]*entity.TaxProfile{}}
	if profile != nil {
		profiles.profiles[profile.CustomerID] = profile
	}
	return appcompliance.NewUseCase(customers, profiles, taxid.DefaultConfig())
}

func testCustomer(taxID string) *entity.Customer {
	return &entity.Customer{
		ID:        customerID,
		CompanyID: companyID,
		Name:      "Distribuciones La Esquina",
		TaxID:     taxID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_PerfilCompletoSinHallazgos(t *testing.T) {
	uc := buildUseCase(testCustomer("4821093765"), &entity.TaxProfile{
		CustomerID:         customerID,
		TaxIDValidated:     true,
		TaxRegistered:      true,
		RegistrationNumber: "RUT-123456",
	})

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	report, err := uc.Evaluate(companyID, customerID, now)
	require.NoError(t, err)

	assert.Equal(t, 100, report.Score, "perfil completo y válido debe dar 100")
	assert.Empty(t, report.Issues)
	assert.True(t, report.TaxID.Valid)
	assert.Equal(t, now.AddDate(0, 0, 30), report.NextCheckDue,
		"la próxima revisión debe quedar a 30 días del instante evaluado")
}

func TestEvaluate_SinPerfilPenalizaDocumentacion(t *testing.T) {
	uc := buildUseCase(testCustomer("4821093765"), nil)

	report, err := uc.Evaluate(companyID, customerID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 60, report.Score, "sin perfil pierde documentación (40)")
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "documentation_missing", report.Issues[0].Kind)
	assert.Equal(t, "high", report.Issues[0].Severity)
}

func TestEvaluate_IdentificadorInvalidoApareceEnReporte(t *testing.T) {
	// Identificador secuencial: formato inválido según el validador.
	uc := buildUseCase(testCustomer("1234567890"), &entity.TaxProfile{
		CustomerID:         customerID,
		TaxIDValidated:     true,
		TaxRegistered:      true,
		RegistrationNumber: "RUT-123456",
	})

	report, err := uc.Evaluate(companyID, customerID, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 70, report.Score)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "identifier_invalid", report.Issues[0].Kind)
	assert.False(t, report.TaxID.Valid)
	assert.Contains(t, report.TaxID.Errors, "sequential")
}

func TestEvaluate_ClienteDeOtraEmpresa_Forbidden(t *testing.T) {
	uc := buildUseCase(testCustomer("4821093765"), nil)

	_, err := uc.Evaluate("otra-empresa", customerID, time.Now())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEvaluate_ClienteInexistente_NotFound(t *testing.T) {
	uc := buildUseCase(nil, nil)

	_, err := uc.Evaluate(companyID, "no-existe", time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpsertProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsertProfile_CreaYSeReflejaEnEvaluate(t *testing.T) {
	customer := testCustomer("4821093765")
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{customer.ID: customer}}
	profiles := &fakeProfileRepo{profiles: map[string]*entity.TaxProfile{}}
	uc := appcompliance.NewUseCase(customers, profiles, taxid.DefaultConfig())

	err := uc.UpsertProfile(companyID, customerID, dto.UpsertTaxProfileRequest{
		TaxIDValidated:     true,
		TaxRegistered:      true,
		RegistrationNumber: "RUT-123456",
	})
	require.NoError(t, err)

	report, err := uc.Evaluate(companyID, customerID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 100, report.Score, "el perfil recién guardado debe alimentar el puntaje")
}

func TestUpsertProfile_ClienteDeOtraEmpresa_Forbidden(t *testing.T) {
	uc := buildUseCase(testCustomer("4821093765"), nil)

	err := uc.UpsertProfile("otra-empresa", customerID, dto.UpsertTaxProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
