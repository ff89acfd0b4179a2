package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"` // opcional; si viene se valida el formato
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas. TaxIDKind es la clasificación
// heurística por primer dígito (individual/company/unknown); solo informativa.
type CustomerResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id,omitempty"`
	TaxIDKind string `json:"tax_id_kind,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices. Las líneas son de texto
// libre con precio del caller; los totales los calcula el motor, nunca el
// cliente HTTP.
type CreateInvoiceRequest struct {
	CustomerID      string               `json:"customer_id"`
	Prefix          string               `json:"prefix"`
	Number          string               `json:"number,omitempty"` // vacío ⇒ consecutivo automático
	Date            string               `json:"date,omitempty"`   // YYYY-MM-DD, vacío ⇒ hoy
	DueDate         string               `json:"due_date,omitempty"`
	InvoiceDiscount decimal.Decimal      `json:"invoice_discount"` // descuento global, se prorratea
	Items           []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura.
type InvoiceItemRequest struct {
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // PENDING | PAID | VOID
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                  `json:"id"`
	CompanyID     string                  `json:"company_id"`
	CustomerID    string                  `json:"customer_id"`
	CustomerName  string                  `json:"customer_name,omitempty"`
	Prefix        string                  `json:"prefix"`
	Number        string                  `json:"number"`
	Date          string                  `json:"date"`
	DueDate       string                  `json:"due_date"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	DiscountTotal decimal.Decimal         `json:"discount_total"`
	TaxTotal      decimal.Decimal         `json:"tax_total"`
	GrandTotal    decimal.Decimal         `json:"grand_total"`
	Status        string                  `json:"status"`
	Details       []InvoiceDetailResponse `json:"details,omitempty"`
}

// InvoiceDetailResponse línea de detalle en la respuesta.
type InvoiceDetailResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	DiscountRate decimal.Decimal `json:"discount_rate"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}
