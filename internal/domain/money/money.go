// Package money implementa el primitivo monetario del motor de cálculo.
//
// Internamente un Money es un entero de unidades menores (centavos), de modo
// que las sumas son exactas bit a bit. Toda multiplicación (cantidad × precio,
// porcentaje, prorrateo) pasa por decimal y se redondea half-up a dos
// decimales inmediatamente. Los componentes de facturación, cartera y
// cumplimiento no deben hacer aritmética de punto flotante por fuera de este
// paquete.
package money

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// Money es un monto en unidades menores (centavos). El valor cero es usable.
type Money struct {
	cents int64
}

// Zero es el monto cero.
var Zero = Money{}

// FromCents construye un Money desde centavos.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromDecimal convierte un decimal a Money redondeando half-up a dos decimales.
func FromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Round(2).Shift(2).IntPart()}
}

// Cents devuelve el monto en centavos.
func (m Money) Cents() int64 { return m.cents }

// Decimal devuelve el monto como decimal con dos decimales.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// String formatea el monto siempre con dos decimales (ej. "200.00").
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add suma dos montos.
func (m Money) Add(o Money) Money { return Money{cents: m.cents + o.cents} }

// Sub resta o de m.
func (m Money) Sub(o Money) Money { return Money{cents: m.cents - o.cents} }

// Neg devuelve el monto con signo opuesto.
func (m Money) Neg() Money { return Money{cents: -m.cents} }

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool { return m.cents == 0 }

// IsNegative indica si el monto es menor que cero.
func (m Money) IsNegative() bool { return m.cents < 0 }

// Cmp compara m contra o: -1 si m < o, 0 si son iguales, 1 si m > o.
func (m Money) Cmp(o Money) int {
	switch {
	case m.cents < o.cents:
		return -1
	case m.cents > o.cents:
		return 1
	default:
		return 0
	}
}

// Equal indica si ambos montos son el mismo número de centavos.
func (m Money) Equal(o Money) bool { return m.cents == o.cents }

// MulDecimal multiplica el monto por un factor decimal y redondea half-up
// al centavo. Es la única vía permitida para multiplicar montos.
func (m Money) MulDecimal(f decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(f))
}

// ApplyPercent aplica un porcentaje (ej. 16 ⇒ 16%) y redondea half-up al centavo.
func (m Money) ApplyPercent(rate decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(rate).Div(cien))
}

// Ratio devuelve part/total como decimal sin redondear, para prorrateos.
// Si total es cero devuelve cero: la asignación definida para el caso
// degenerado, nunca un pánico por división.
func Ratio(part, total Money) decimal.Decimal {
	if total.cents == 0 {
		return decimal.Zero
	}
	return part.Decimal().Div(total.Decimal())
}

// Sum suma una lista de montos.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
