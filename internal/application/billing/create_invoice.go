package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	domainbilling "github.com/tu-usuario/gestion-pyme/internal/domain/billing"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

const defaultPaymentTermDays = 30

// CreateInvoiceUseCase crea una factura: valida referencias, calcula los
// totales con el motor de facturación y persiste cabecera y detalles en una
// sola transacción. Es el único camino por el que se producen totales; la
// exportación y los reportes leen lo persistido.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateInvoice crea la factura para la empresa del token. Los errores de
// validación del motor se devuelven tal cual (*billing.ValidationError) para
// que el handler los exponga campo a campo.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || in.Prefix == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	date, err := parseDateOr(in.Date, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := parseDateOr(in.DueDate, date.AddDate(0, 0, defaultPaymentTermDays))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Motor de cálculo: líneas + descuento global. Falla rápido ante input
	// inválido, sin totales parciales.
	lines := make([]domainbilling.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, domainbilling.LineItem{
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TaxRate:      it.TaxRate,
			DiscountRate: it.DiscountRate,
		})
	}
	totals, err := domainbilling.ComputeInvoiceTotals(lines, in.InvoiceDiscount)
	if err != nil {
		return nil, err
	}

	invoiceID := uuid.New().String()
	invoice := &entity.Invoice{
		ID:            invoiceID,
		CompanyID:     companyID,
		CustomerID:    customer.ID,
		Prefix:        in.Prefix,
		Number:        in.Number,
		Date:          date,
		DueDate:       dueDate,
		Subtotal:      totals.Subtotal.Decimal(),
		DiscountTotal: totals.DiscountTotal.Decimal(),
		TaxTotal:      totals.TaxTotal.Decimal(),
		GrandTotal:    totals.GrandTotal.Decimal(),
		Status:        entity.InvoiceStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	details := make([]*entity.InvoiceDetail, 0, len(lines))
	for _, li := range lines {
		amounts, cErr := domainbilling.ComputeLine(li)
		if cErr != nil {
			return nil, cErr
		}
		details = append(details, &entity.InvoiceDetail{
			ID:           uuid.New().String(),
			InvoiceID:    invoiceID,
			Description:  li.Description,
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
			TaxRate:      li.TaxRate,
			DiscountRate: li.DiscountRate,
			Subtotal:     amounts.Subtotal.Decimal(),
			Discount:     amounts.Discount.Decimal(),
			Tax:          amounts.Tax.Decimal(),
			Total:        amounts.Total.Decimal(),
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(
		_ repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if invoice.Number == "" {
			next, nErr := invoiceRepo.NextNumber(companyID, invoice.Prefix)
			if nErr != nil {
				return nErr
			}
			invoice.Number = next
		}
		return invoiceRepo.Create(invoice, details)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	return toInvoiceResponse(invoice, customer.Name, details), nil
}

// GetInvoice devuelve una factura de la empresa con sus detalles.
func (uc *CreateInvoiceUseCase) GetInvoice(companyID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	details, err := uc.invoiceRepo.GetDetails(invoiceID)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, cErr := uc.customerRepo.GetByID(inv.CustomerID); cErr == nil && customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(inv, customerName, details), nil
}

// ListInvoices lista facturas de la empresa con paginación, sin detalles.
func (uc *CreateInvoiceUseCase) ListInvoices(companyID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv, "", nil))
	}
	return out, nil
}

// UpdateStatus marca una factura como pagada o anulada. Las facturas PENDING
// son las que alimentan el reporte de antigüedad de cartera.
func (uc *CreateInvoiceUseCase) UpdateStatus(companyID, invoiceID, status string) error {
	if status != entity.InvoiceStatusPending &&
		status != entity.InvoiceStatusPaid &&
		status != entity.InvoiceStatusVoid {
		return domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.invoiceRepo.UpdateStatus(invoiceID, status)
}

func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", s)
}

func toInvoiceResponse(inv *entity.Invoice, customerName string, details []*entity.InvoiceDetail) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		CustomerID:    inv.CustomerID,
		CustomerName:  customerName,
		Prefix:        inv.Prefix,
		Number:        inv.Number,
		Date:          inv.Date.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		DiscountTotal: inv.DiscountTotal,
		TaxTotal:      inv.TaxTotal,
		GrandTotal:    inv.GrandTotal,
		Status:        inv.Status,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.InvoiceDetailResponse{
			ID:           d.ID,
			Description:  d.Description,
			Quantity:     d.Quantity,
			UnitPrice:    d.UnitPrice,
			TaxRate:      d.TaxRate,
			DiscountRate: d.DiscountRate,
			Subtotal:     d.Subtotal,
			Discount:     d.Discount,
			Tax:          d.Tax,
			Total:        d.Total,
		})
	}
	return resp
}
