package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	InvoiceStatusPending = "PENDING" // emitida, pendiente de pago
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusVoid    = "VOID" // anulada
)

// Invoice representa la cabecera de una factura. Los totales se calculan una
// sola vez en el motor de facturación y se persisten tal cual; ninguna otra
// capa los recalcula.
type Invoice struct {
	ID            string
	CompanyID     string
	CustomerID    string
	Prefix        string
	Number        string
	Date          time.Time
	DueDate       time.Time
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal // descuentos de línea + descuento global
	TaxTotal      decimal.Decimal
	GrandTotal    decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
