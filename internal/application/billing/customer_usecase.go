package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

// CustomerUseCase casos de uso para clientes (facturación). Al crear o
// actualizar valida el formato del identificador tributario con la
// configuración de la jurisdicción.
type CustomerUseCase struct {
	repo      repository.CustomerRepository
	taxIDConf taxid.Config
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, taxIDConf taxid.Config) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, taxIDConf: taxIDConf}
}

// TaxIDError señala un identificador tributario con formato inválido.
// Envuelve el resultado del validador para que el handler pinte las causas.
type TaxIDError struct {
	Result taxid.Result
}

// Error implementa error.
func (e *TaxIDError) Error() string {
	if len(e.Result.Errors) > 0 {
		return "identificador tributario inválido: " + e.Result.Errors[0].Message
	}
	return "identificador tributario inválido"
}

// Create crea un nuevo cliente. El identificador es opcional; si viene, se
// almacena limpio (sin espacios) y con formato válido.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	res := taxid.Validate(in.TaxID, uc.taxIDConf)
	if res.Present && !res.Valid {
		return nil, &TaxIDError{Result: res}
	}
	if res.Present {
		existing, _ := uc.repo.GetByCompanyAndTaxID(companyID, res.Cleaned)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		TaxID:     res.Cleaned,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID devuelve un cliente de la empresa.
func (uc *CustomerUseCase) GetByID(companyID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa.
func (uc *CustomerUseCase) List(companyID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
	}
	if c.TaxID != "" {
		// Heurística informativa, no autoritativa.
		resp.TaxIDKind = string(taxid.Classify(c.TaxID))
	}
	return resp
}
