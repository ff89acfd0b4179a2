package dto

import "time"

// UpsertTaxProfileRequest body para PUT /api/customers/:id/tax-profile.
type UpsertTaxProfileRequest struct {
	TaxIDValidated     bool       `json:"tax_id_validated"`
	TaxRegistered      bool       `json:"tax_registered"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	Exempt             bool       `json:"exempt"`
	ExemptValidUntil   *time.Time `json:"exempt_valid_until,omitempty"`
}

// ComplianceIssueDTO hallazgo del reporte de cumplimiento.
type ComplianceIssueDTO struct {
	Kind           string `json:"kind"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// TaxIDValidationDTO resultado de la validación de formato del identificador.
type TaxIDValidationDTO struct {
	Valid   bool     `json:"valid"`
	Present bool     `json:"present"`
	Cleaned string   `json:"cleaned,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// ComplianceReportResponse respuesta de GET /api/customers/:id/compliance.
type ComplianceReportResponse struct {
	CustomerID   string               `json:"customer_id"`
	Score        int                  `json:"score"`
	Issues       []ComplianceIssueDTO `json:"issues"`
	NextCheckDue time.Time            `json:"next_check_due"`
	TaxID        TaxIDValidationDTO   `json:"tax_id"`
}
