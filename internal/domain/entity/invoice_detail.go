package entity

import "github.com/shopspring/decimal"

// InvoiceDetail representa una línea de detalle de una factura, con los
// montos por línea que ya calculó el motor.
type InvoiceDetail struct {
	ID           string
	InvoiceID    string
	Description  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TaxRate      decimal.Decimal
	DiscountRate decimal.Decimal
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}
