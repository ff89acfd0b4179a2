// Package compliance calcula el puntaje de cumplimiento tributario de un
// cliente (0–100) a partir de su perfil y del resultado del validador de
// identificador. Las deducciones son independientes y se suman; los pesos
// son constantes del paquete, no política configurable.
package compliance

import (
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

// Severity es la severidad de un hallazgo.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IssueKind identifica el tipo de hallazgo.
type IssueKind string

const (
	IssueDocumentationMissing IssueKind = "documentation_missing"
	IssueIdentifierInvalid    IssueKind = "identifier_invalid"
	IssueRegistrationMismatch IssueKind = "registration_mismatch"
	IssueExemptionExpired     IssueKind = "exemption_expired"
)

// Deducciones por hallazgo.
const (
	DeductMissingProfile       = 40
	DeductIdentifierInvalid    = 30
	DeductRegistrationMismatch = 20
	DeductExemptionExpired     = 50
)

// checkInterval es el plazo fijo hasta la próxima revisión.
const checkIntervalDays = 30

// Profile es el perfil tributario de un cliente tal como lo entrega la capa
// de persistencia. Todos los campos son datos planos; el scorer no consulta
// nada por fuera de sus argumentos.
type Profile struct {
	TaxID              string
	TaxIDValidated     bool
	TaxRegistered      bool
	RegistrationNumber string
	Exempt             bool
	ExemptValidUntil   *time.Time
}

// Issue es un hallazgo del reporte, con recomendación fija.
type Issue struct {
	Kind           IssueKind
	Severity       Severity
	Description    string
	Recommendation string
}

// Report es el resultado de la evaluación.
type Report struct {
	Score        int // 0–100
	Issues       []Issue
	NextCheckDue time.Time
}

// Score evalúa el perfil en el instante now. El orden de los hallazgos es
// fijo (el de las deducciones) para que el reporte sea determinista.
func Score(profile *Profile, id taxid.Result, now time.Time) Report {
	score := 100
	var issues []Issue

	if profile == nil {
		score -= DeductMissingProfile
		issues = append(issues, Issue{
			Kind:           IssueDocumentationMissing,
			Severity:       SeverityHigh,
			Description:    "el cliente no tiene perfil tributario registrado",
			Recommendation: "solicitar y registrar la documentación tributaria del cliente",
		})
	} else {
		if profile.TaxID != "" && !(profile.TaxIDValidated && id.Valid) {
			score -= DeductIdentifierInvalid
			issues = append(issues, Issue{
				Kind:           IssueIdentifierInvalid,
				Severity:       SeverityHigh,
				Description:    "el identificador tributario no está validado",
				Recommendation: "verificar el identificador contra el RUT del cliente",
			})
		}
		if profile.TaxRegistered && profile.RegistrationNumber == "" {
			score -= DeductRegistrationMismatch
			issues = append(issues, Issue{
				Kind:           IssueRegistrationMismatch,
				Severity:       SeverityMedium,
				Description:    "figura como responsable de impuestos pero no tiene número de registro",
				Recommendation: "capturar el número de registro tributario del cliente",
			})
		}
		if profile.Exempt && profile.ExemptValidUntil != nil && profile.ExemptValidUntil.Before(now) {
			score -= DeductExemptionExpired
			issues = append(issues, Issue{
				Kind:           IssueExemptionExpired,
				Severity:       SeverityCritical,
				Description:    "el certificado de exención está vencido",
				Recommendation: "renovar el certificado de exención o retirar la marca de exento",
			})
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Report{
		Score:        score,
		Issues:       issues,
		NextCheckDue: now.AddDate(0, 0, checkIntervalDays),
	}
}
