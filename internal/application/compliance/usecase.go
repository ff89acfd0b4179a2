// Package compliance orquesta el reporte de cumplimiento tributario de un
// cliente: carga el perfil, valida el identificador y delega el puntaje al
// motor de dominio. El instante de evaluación siempre se inyecta.
package compliance

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	domaincompliance "github.com/tu-usuario/gestion-pyme/internal/domain/compliance"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

// UseCase evalúa el cumplimiento tributario de clientes.
type UseCase struct {
	customerRepo repository.CustomerRepository
	profileRepo  repository.TaxProfileRepository
	taxIDConf    taxid.Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	customerRepo repository.CustomerRepository,
	profileRepo repository.TaxProfileRepository,
	taxIDConf taxid.Config,
) *UseCase {
	return &UseCase{customerRepo: customerRepo, profileRepo: profileRepo, taxIDConf: taxIDConf}
}

// Evaluate genera el reporte de cumplimiento del cliente al instante now.
func (uc *UseCase) Evaluate(companyID, customerID string, now time.Time) (*dto.ComplianceReportResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	stored, err := uc.profileRepo.GetByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	idResult := taxid.Validate(customer.TaxID, uc.taxIDConf)

	var profile *domaincompliance.Profile
	if stored != nil {
		profile = &domaincompliance.Profile{
			TaxID:              customer.TaxID,
			TaxIDValidated:     stored.TaxIDValidated,
			TaxRegistered:      stored.TaxRegistered,
			RegistrationNumber: stored.RegistrationNumber,
			Exempt:             stored.Exempt,
			ExemptValidUntil:   stored.ExemptValidUntil,
		}
	}

	report := domaincompliance.Score(profile, idResult, now)
	return toResponse(customerID, report, idResult), nil
}

// UpsertProfile crea o actualiza el perfil tributario del cliente.
func (uc *UseCase) UpsertProfile(companyID, customerID string, in dto.UpsertTaxProfileRequest) error {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return domain.ErrForbidden
	}

	now := time.Now()
	return uc.profileRepo.Upsert(&entity.TaxProfile{
		ID:                 uuid.New().String(),
		CustomerID:         customerID,
		TaxIDValidated:     in.TaxIDValidated,
		TaxRegistered:      in.TaxRegistered,
		RegistrationNumber: in.RegistrationNumber,
		Exempt:             in.Exempt,
		ExemptValidUntil:   in.ExemptValidUntil,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

func toResponse(customerID string, report domaincompliance.Report, id taxid.Result) *dto.ComplianceReportResponse {
	resp := &dto.ComplianceReportResponse{
		CustomerID:   customerID,
		Score:        report.Score,
		Issues:       make([]dto.ComplianceIssueDTO, 0, len(report.Issues)),
		NextCheckDue: report.NextCheckDue,
		TaxID: dto.TaxIDValidationDTO{
			Valid:   id.Valid,
			Present: id.Present,
			Cleaned: id.Cleaned,
		},
	}
	for _, e := range id.Errors {
		resp.TaxID.Errors = append(resp.TaxID.Errors, e.Code)
	}
	for _, iss := range report.Issues {
		resp.Issues = append(resp.Issues, dto.ComplianceIssueDTO{
			Kind:           string(iss.Kind),
			Severity:       string(iss.Severity),
			Description:    iss.Description,
			Recommendation: iss.Recommendation,
		})
	}
	return resp
}
