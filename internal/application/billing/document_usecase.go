package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// DocumentUseCase genera las representaciones exportables de una factura
// (PDF y XML) a partir de los datos persistidos. Las cifras salen de la base
// tal como las dejó el motor; este caso de uso no recalcula nada.
type DocumentUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	pdf          InvoicePDFGenerator
	xml          InvoiceXMLGenerator
}

// NewDocumentUseCase construye el caso de uso inyectando los generadores.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		pdf:          pdf,
		xml:          xml,
	}
}

// InvoicePDF genera el PDF de la factura. Retorna los bytes y el nombre de
// archivo sugerido.
func (uc *DocumentUseCase) InvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, company, customer, details, err := uc.load(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.pdf.GenerateInvoicePDF(ctx, inv, company, customer, details)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return out, fmt.Sprintf("factura_%s%s.pdf", inv.Prefix, inv.Number), nil
}

// InvoiceXML genera el documento XML de la factura.
func (uc *DocumentUseCase) InvoiceXML(companyID, invoiceID string) ([]byte, string, error) {
	inv, company, customer, details, err := uc.load(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.xml.GenerateInvoiceXML(inv, company, customer, details)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}
	return out, fmt.Sprintf("factura_%s%s.xml", inv.Prefix, inv.Number), nil
}

func (uc *DocumentUseCase) load(companyID, invoiceID string) (
	*entity.Invoice, *entity.Company, *entity.Customer, []*entity.InvoiceDetail, error,
) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("documento: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, nil, nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, nil, nil, nil, fmt.Errorf("documento: obtener empresa: %w", err)
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil || customer == nil {
		return nil, nil, nil, nil, fmt.Errorf("documento: obtener cliente: %w", err)
	}
	details, err := uc.invoiceRepo.GetDetails(invoiceID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("documento: obtener detalles: %w", err)
	}
	return inv, company, customer, details, nil
}
