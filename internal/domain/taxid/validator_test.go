package taxid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/domain/taxid"
)

func cfg() taxid.Config { return taxid.DefaultConfig() }

func firstCode(t *testing.T, r taxid.Result) string {
	t.Helper()
	require.NotEmpty(t, r.Errors)
	return r.Errors[0].Code
}

func TestValidate_VacioEsValidoYAusente(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		r := taxid.Validate(raw, cfg())
		assert.True(t, r.Valid, "vacío es campo opcional, no error")
		assert.False(t, r.Present)
		assert.Empty(t, r.Cleaned)
		assert.Empty(t, r.Errors)
	}
}

func TestValidate_QuitaEspacios(t *testing.T) {
	r := taxid.Validate("  4821 093 765 ", cfg())
	assert.True(t, r.Valid)
	assert.Equal(t, "4821093765", r.Cleaned)
}

func TestValidate_FormatoValido(t *testing.T) {
	r := taxid.Validate("4821093765", cfg())
	assert.True(t, r.Valid)
	assert.True(t, r.Present)
	assert.Empty(t, r.Errors)
}

func TestValidate_Formato(t *testing.T) {
	cases := []string{
		"123456789",    // 9 dígitos
		"12345678901",  // 11 dígitos
		"48210A3765",   // letra
		"4821-093765",  // guion (la limpieza solo quita espacios)
	}
	for _, raw := range cases {
		r := taxid.Validate(raw, cfg())
		assert.False(t, r.Valid, "%q debe fallar formato", raw)
		assert.Equal(t, taxid.ErrCodeFormat, firstCode(t, r))
	}
}

func TestValidate_TodosLosDigitosIguales(t *testing.T) {
	r := taxid.Validate("0000000000", cfg())
	assert.False(t, r.Valid)
	assert.Equal(t, taxid.ErrCodeAllSameDigit, firstCode(t, r))

	r = taxid.Validate("7777777777", cfg())
	assert.Equal(t, taxid.ErrCodeAllSameDigit, firstCode(t, r))
}

func TestValidate_Secuencias(t *testing.T) {
	for _, raw := range []string{"1234567890", "0123456789", "9876543210", "0987654321"} {
		r := taxid.Validate(raw, cfg())
		assert.False(t, r.Valid, "%q es secuencial", raw)
		assert.Equal(t, taxid.ErrCodeSequential, firstCode(t, r))
	}
}

func TestValidate_CasiSecuenciaNoCuenta(t *testing.T) {
	// paso 2, no es secuencia estricta de paso 1
	r := taxid.Validate("1357913579", cfg())
	assert.True(t, r.Valid)
}

func TestValidate_CortaEnElPrimerFallo(t *testing.T) {
	// "111" falla formato antes de llegar a la regla de dígitos iguales.
	r := taxid.Validate("111", cfg())
	require.Len(t, r.Errors, 1)
	assert.Equal(t, taxid.ErrCodeFormat, r.Errors[0].Code)
}

func TestValidate_EstrategiaDeDigitoDeVerificacion(t *testing.T) {
	called := ""
	c := taxid.Config{
		Length: 10,
		CheckDigit: func(digits string) error {
			called = digits
			return errors.New("dígito no cuadra")
		},
	}
	r := taxid.Validate("4821093765", c)
	assert.False(t, r.Valid)
	assert.Equal(t, "4821093765", called, "la estrategia recibe el valor limpio")
	assert.Equal(t, taxid.ErrCodeCheckDigit, firstCode(t, r))
	assert.Equal(t, "dígito no cuadra", r.Errors[0].Message)
}

func TestValidate_EstrategiaNoSeInvocaSiElPatronFalla(t *testing.T) {
	invoked := false
	c := taxid.Config{
		Length:     10,
		CheckDigit: func(string) error { invoked = true; return nil },
	}
	taxid.Validate("1234567890", c)
	assert.False(t, invoked, "las reglas de patrón cortocircuitan antes de la estrategia")
}

// ── Estrategia módulo 11 ──────────────────────────────────────────────────────

func TestMod11CheckDigit(t *testing.T) {
	// 900123456: suma ponderada 9×41+0×37+0×29+1×23+2×19+3×17+4×13+5×7+6×3
	// = 369+23+38+51+52+35+18 = 586; 586 % 11 = 3; DV = 11−3 = 8.
	require.NoError(t, taxid.Mod11CheckDigit("9001234568"))
	require.Error(t, taxid.Mod11CheckDigit("9001234567"))
	require.Error(t, taxid.Mod11CheckDigit("900123456"), "faltando el dígito de verificación")
}

func TestValidate_ConMod11(t *testing.T) {
	c := taxid.Config{Length: 10, CheckDigit: taxid.Mod11CheckDigit}

	r := taxid.Validate("9001234568", c)
	assert.True(t, r.Valid)

	r = taxid.Validate("9001234560", c)
	assert.False(t, r.Valid)
	assert.Equal(t, taxid.ErrCodeCheckDigit, firstCode(t, r))
}

// ── Clasificación heurística ──────────────────────────────────────────────────

func TestClassify(t *testing.T) {
	assert.Equal(t, taxid.KindCompany, taxid.Classify("9001234568"))
	assert.Equal(t, taxid.KindCompany, taxid.Classify("8300001234"))
	assert.Equal(t, taxid.KindIndividual, taxid.Classify("4821093765"))
	assert.Equal(t, taxid.KindIndividual, taxid.Classify("1098765432"))
	assert.Equal(t, taxid.KindUnknown, taxid.Classify(""))
	assert.Equal(t, taxid.KindUnknown, taxid.Classify("X123"))
}
