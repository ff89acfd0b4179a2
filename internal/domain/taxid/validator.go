// Package taxid valida el formato de identificadores tributarios (NIT/TIN)
// y ofrece una clasificación heurística por primer dígito. La validación de
// dígito de verificación es una estrategia inyectable: por defecto solo se
// aplican las reglas de patrón.
package taxid

import (
	"fmt"
	"strings"
	"unicode"
)

// Códigos de error de validación, estables para que las capas de arriba
// puedan mapearlos a mensajes por campo.
const (
	ErrCodeFormat       = "format"         // no son exactamente N dígitos
	ErrCodeAllSameDigit = "all_same_digit" // todos los dígitos iguales
	ErrCodeSequential   = "sequential"     // secuencia aritmética de paso 1
	ErrCodeCheckDigit   = "check_digit"    // falla la estrategia de dígito de verificación
)

// CheckDigitFunc es la estrategia de dígito de verificación. Recibe el
// identificador ya limpio (solo dígitos, longitud válida) y devuelve error si
// el dígito no cuadra. Cada jurisdicción define el suyo, por eso esto es un
// punto de extensión y no un algoritmo fijo.
type CheckDigitFunc func(digits string) error

// Config parametriza la validación por jurisdicción.
type Config struct {
	Length     int            // cantidad exacta de dígitos esperada
	CheckDigit CheckDigitFunc // nil ⇒ sin verificación de dígito
}

// DefaultConfig devuelve la configuración por defecto: 10 dígitos, sin
// estrategia de dígito de verificación.
func DefaultConfig() Config {
	return Config{Length: 10}
}

// Result es el resultado de validar un identificador.
type Result struct {
	Valid   bool
	Present bool   // false si el input era vacío (campo opcional, no error)
	Cleaned string // identificador sin espacios
	Errors  []Error
}

// Error es un error de validación con código estable y mensaje legible.
type Error struct {
	Code    string
	Message string
}

// Validate aplica las reglas en orden, cortando en la primera que falla:
//
//  1. quitar espacios; vacío es válido-y-ausente (campo opcional)
//  2. exactamente cfg.Length dígitos
//  3. rechazar si todos los dígitos son iguales
//  4. rechazar secuencias aritméticas estrictas de paso 1 (asc o desc,
//     con arrastre módulo 10: "1234567890" cuenta como secuencia)
//  5. aplicar la estrategia de dígito de verificación, si hay
func Validate(raw string, cfg Config) Result {
	cleaned := stripSpaces(raw)
	if cleaned == "" {
		return Result{Valid: true, Present: false, Cleaned: ""}
	}
	res := Result{Present: true, Cleaned: cleaned}

	if !isDigits(cleaned) || len(cleaned) != cfg.Length {
		res.Errors = append(res.Errors, Error{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("debe tener exactamente %d dígitos", cfg.Length),
		})
		return res
	}
	if allSame(cleaned) {
		res.Errors = append(res.Errors, Error{
			Code:    ErrCodeAllSameDigit,
			Message: "todos los dígitos son iguales",
		})
		return res
	}
	if isSequential(cleaned) {
		res.Errors = append(res.Errors, Error{
			Code:    ErrCodeSequential,
			Message: "es una secuencia consecutiva de dígitos",
		})
		return res
	}
	if cfg.CheckDigit != nil {
		if err := cfg.CheckDigit(cleaned); err != nil {
			res.Errors = append(res.Errors, Error{
				Code:    ErrCodeCheckDigit,
				Message: err.Error(),
			})
			return res
		}
	}
	res.Valid = true
	return res
}

func stripSpaces(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// isSequential detecta secuencias estrictas de paso 1 en ambas direcciones,
// con arrastre módulo 10 (…8,9,0,1…).
func isSequential(s string) bool {
	if len(s) < 2 {
		return false
	}
	asc, desc := true, true
	for i := 1; i < len(s); i++ {
		step := (int(s[i]-'0') - int(s[i-1]-'0') + 10) % 10
		if step != 1 {
			asc = false
		}
		if step != 9 {
			desc = false
		}
	}
	return asc || desc
}
