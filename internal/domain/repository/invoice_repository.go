package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus detalles.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice, details []*entity.InvoiceDetail) error
	GetByID(id string) (*entity.Invoice, error)
	GetDetails(invoiceID string) ([]*entity.InvoiceDetail, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	// ListOutstanding devuelve las facturas con estado PENDING de la empresa.
	ListOutstanding(companyID string) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	NextNumber(companyID, prefix string) (string, error)
}
