// Package billing contiene el motor de cálculo de facturas: montos por línea
// y agregación con prorrateo del descuento global. Es lógica pura: no hace
// I/O, no registra logs y no toca reloj; el mismo input produce siempre el
// mismo output al centavo.
package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/domain/money"
)

var cien = decimal.NewFromInt(100)

// LineItem es una línea de factura tal como la entrega el caller. El motor
// nunca la muta.
type LineItem struct {
	Description  string
	Quantity     decimal.Decimal // no negativa
	UnitPrice    decimal.Decimal // no negativo, precisión de centavos
	TaxRate      decimal.Decimal // porcentaje 0–100 (ej. IVA 19)
	DiscountRate decimal.Decimal // porcentaje 0–100, descuento de la línea
}

// LineAmounts son los montos calculados de una línea.
type LineAmounts struct {
	Subtotal money.Money // cantidad × precio unitario
	Discount money.Money // subtotal × tasa de descuento
	Total    money.Money // subtotal − descuento
	Tax      money.Money // total × tasa de impuesto
}

// InvoiceTotals son los totales finales de la factura.
// Invariante: GrandTotal == Subtotal − DiscountTotal + TaxTotal, al centavo.
type InvoiceTotals struct {
	Subtotal      money.Money
	DiscountTotal money.Money
	TaxTotal      money.Money
	GrandTotal    money.Money
}

// FieldError es un error de validación atado a un campo concreto.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa los errores de campo de un input rechazado.
// El motor no calcula totales parciales: o todo el input es válido, o se
// devuelve este error con cada campo problemático.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa error.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "entrada inválida: " + strings.Join(msgs, "; ")
}

// validateLine valida una línea; idx es la posición para el nombre del campo.
func validateLine(idx int, li LineItem) []FieldError {
	var errs []FieldError
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", idx, name) }

	if li.Quantity.IsNegative() {
		errs = append(errs, FieldError{Field: field("quantity"), Message: "la cantidad no puede ser negativa"})
	}
	if li.UnitPrice.IsNegative() {
		errs = append(errs, FieldError{Field: field("unit_price"), Message: "el precio unitario no puede ser negativo"})
	}
	if li.TaxRate.IsNegative() || li.TaxRate.GreaterThan(cien) {
		errs = append(errs, FieldError{Field: field("tax_rate"), Message: "la tasa de impuesto debe estar entre 0 y 100"})
	}
	if li.DiscountRate.IsNegative() || li.DiscountRate.GreaterThan(cien) {
		errs = append(errs, FieldError{Field: field("discount_rate"), Message: "la tasa de descuento debe estar entre 0 y 100"})
	}
	return errs
}

// ComputeLine calcula los montos de una línea:
//
//	subtotal  = cantidad × precio unitario
//	descuento = subtotal × tasa de descuento
//	total     = subtotal − descuento
//	impuesto  = total × tasa de impuesto
//
// Cada multiplicación se redondea half-up al centavo.
func ComputeLine(li LineItem) (LineAmounts, error) {
	if errs := validateLine(0, li); len(errs) > 0 {
		return LineAmounts{}, &ValidationError{Fields: errs}
	}
	return computeLine(li), nil
}

func computeLine(li LineItem) LineAmounts {
	subtotal := money.FromDecimal(li.Quantity.Mul(li.UnitPrice))
	discount := subtotal.ApplyPercent(li.DiscountRate)
	total := subtotal.Sub(discount)
	tax := total.ApplyPercent(li.TaxRate)
	return LineAmounts{Subtotal: subtotal, Discount: discount, Total: total, Tax: tax}
}

// ComputeInvoiceTotals agrega las líneas y aplica el descuento global de la
// factura. Es el único punto de entrada autoritativo para los totales: el
// prorrateo del descuento y la re-derivación del impuesto por línea ocurren
// aquí y en ningún otro lugar.
//
// Con descuento global positivo el impuesto se recalcula sobre el monto ya
// descontado de cada línea: la participación de cada línea es su total
// vigente (post descuento de línea) sobre el subtotal, de modo que las
// líneas en cero no reciben descuento. Un "descuento primero, impuesto plano
// después" daría otra cifra de impuesto cuando las tasas difieren por línea.
//
// Caso degenerado: subtotal cero con descuento positivo no es error; se
// omite el prorrateo y los totales quedan como en la primera pasada.
func ComputeInvoiceTotals(lines []LineItem, invoiceDiscount decimal.Decimal) (InvoiceTotals, error) {
	var fieldErrs []FieldError
	for i, li := range lines {
		fieldErrs = append(fieldErrs, validateLine(i, li)...)
	}
	if invoiceDiscount.IsNegative() {
		fieldErrs = append(fieldErrs, FieldError{Field: "invoice_discount", Message: "el descuento de factura no puede ser negativo"})
	}
	if len(fieldErrs) > 0 {
		return InvoiceTotals{}, &ValidationError{Fields: fieldErrs}
	}

	// Primera pasada: montos por línea y acumulados.
	amounts := make([]LineAmounts, len(lines))
	var subtotal, lineDiscounts, tax money.Money
	for i, li := range lines {
		amounts[i] = computeLine(li)
		subtotal = subtotal.Add(amounts[i].Subtotal)
		lineDiscounts = lineDiscounts.Add(amounts[i].Discount)
		tax = tax.Add(amounts[i].Tax)
	}

	discountTotal := lineDiscounts
	invDisc := money.FromDecimal(invoiceDiscount)

	// Segunda pasada: prorrateo del descuento global y re-derivación del
	// impuesto por línea. Solo si hay descuento y el subtotal no es cero.
	if !invDisc.IsZero() && !subtotal.IsZero() {
		tax = money.Zero
		for i, li := range lines {
			share := money.Ratio(amounts[i].Total, subtotal)
			itemInvDisc := invDisc.MulDecimal(share)
			finalTotal := amounts[i].Total.Sub(itemInvDisc)
			tax = tax.Add(finalTotal.ApplyPercent(li.TaxRate))
		}
		discountTotal = lineDiscounts.Add(invDisc)
	}

	grand := subtotal.Sub(discountTotal).Add(tax)
	return InvoiceTotals{
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		TaxTotal:      tax,
		GrandTotal:    grand,
	}, nil
}
