package billing

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los
// repositorios de facturación atados a la misma tx.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
// El generador pinta los totales persistidos tal cual; no recalcula nada.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		details []*entity.InvoiceDetail,
	) ([]byte, error)
}

// InvoiceXMLGenerator genera el documento XML de una factura, con la misma
// regla: cifras del motor, verbatim.
type InvoiceXMLGenerator interface {
	GenerateInvoiceXML(
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		details []*entity.InvoiceDetail,
	) ([]byte, error)
}
