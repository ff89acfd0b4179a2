package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/domain/compliance"
	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

var evalTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func validID() taxid.Result {
	return taxid.Result{Valid: true, Present: true, Cleaned: "4821093765"}
}

func invalidID() taxid.Result {
	return taxid.Result{Present: true, Cleaned: "0000000000",
		Errors: []taxid.Error{{Code: taxid.ErrCodeAllSameDigit, Message: "todos los dígitos son iguales"}}}
}

func TestScore_PerfilCompleto_Cien(t *testing.T) {
	p := &compliance.Profile{
		TaxID:              "4821093765",
		TaxIDValidated:     true,
		TaxRegistered:      true,
		RegistrationNumber: "RT-2024-881",
	}
	rep := compliance.Score(p, validID(), evalTime)

	assert.Equal(t, 100, rep.Score)
	assert.Empty(t, rep.Issues)
	assert.Equal(t, evalTime.AddDate(0, 0, 30), rep.NextCheckDue)
}

func TestScore_SinPerfil_Sesenta(t *testing.T) {
	rep := compliance.Score(nil, taxid.Result{}, evalTime)

	assert.Equal(t, 60, rep.Score)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, compliance.IssueDocumentationMissing, rep.Issues[0].Kind)
	assert.Equal(t, compliance.SeverityHigh, rep.Issues[0].Severity)
}

// Escenario: registrado como responsable sin número de registro ⇒ 80 con un
// único hallazgo registration_mismatch de severidad media.
func TestScore_RegistroSinNumero_Ochenta(t *testing.T) {
	p := &compliance.Profile{TaxRegistered: true}
	rep := compliance.Score(p, taxid.Result{Valid: true}, evalTime)

	assert.Equal(t, 80, rep.Score)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, compliance.IssueRegistrationMismatch, rep.Issues[0].Kind)
	assert.Equal(t, compliance.SeverityMedium, rep.Issues[0].Severity)
}

func TestScore_IdentificadorNoValidado_Setenta(t *testing.T) {
	p := &compliance.Profile{TaxID: "0000000000", TaxIDValidated: false}
	rep := compliance.Score(p, invalidID(), evalTime)

	assert.Equal(t, 70, rep.Score)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, compliance.IssueIdentifierInvalid, rep.Issues[0].Kind)
}

func TestScore_MarcadoValidadoPeroResultadoInvalido(t *testing.T) {
	// La marca del perfil no basta: el resultado del validador también cuenta.
	p := &compliance.Profile{TaxID: "0000000000", TaxIDValidated: true}
	rep := compliance.Score(p, invalidID(), evalTime)
	assert.Equal(t, 70, rep.Score)
}

func TestScore_SinIdentificador_NoDeducePorIdentificador(t *testing.T) {
	p := &compliance.Profile{}
	rep := compliance.Score(p, taxid.Result{Valid: true}, evalTime)
	assert.Equal(t, 100, rep.Score)
}

func TestScore_ExencionVencida(t *testing.T) {
	expired := evalTime.AddDate(0, -2, 0)
	p := &compliance.Profile{Exempt: true, ExemptValidUntil: &expired}
	rep := compliance.Score(p, taxid.Result{Valid: true}, evalTime)

	assert.Equal(t, 50, rep.Score)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, compliance.IssueExemptionExpired, rep.Issues[0].Kind)
	assert.Equal(t, compliance.SeverityCritical, rep.Issues[0].Severity)
}

func TestScore_ExencionVigenteNoDecuenta(t *testing.T) {
	future := evalTime.AddDate(1, 0, 0)
	p := &compliance.Profile{Exempt: true, ExemptValidUntil: &future}
	rep := compliance.Score(p, taxid.Result{Valid: true}, evalTime)
	assert.Equal(t, 100, rep.Score)
}

// Las deducciones se suman sin componerse y el puntaje se recorta a cero.
func TestScore_DeduccionesSumadasYRecorteACero(t *testing.T) {
	expired := evalTime.AddDate(0, 0, -1)
	p := &compliance.Profile{
		TaxID:            "0000000000",
		TaxRegistered:    true,
		Exempt:           true,
		ExemptValidUntil: &expired,
	}
	rep := compliance.Score(p, invalidID(), evalTime)

	// 100 − 30 − 20 − 50 = 0
	assert.Equal(t, 0, rep.Score)
	require.Len(t, rep.Issues, 3)
	// Orden determinista: el de las deducciones.
	assert.Equal(t, compliance.IssueIdentifierInvalid, rep.Issues[0].Kind)
	assert.Equal(t, compliance.IssueRegistrationMismatch, rep.Issues[1].Kind)
	assert.Equal(t, compliance.IssueExemptionExpired, rep.Issues[2].Kind)
}

func TestScore_Determinista(t *testing.T) {
	p := &compliance.Profile{TaxRegistered: true}
	first := compliance.Score(p, taxid.Result{Valid: true}, evalTime)
	second := compliance.Score(p, taxid.Result{Valid: true}, evalTime)
	assert.Equal(t, first, second)
}
