package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera y los detalles. Se espera que el caller lo
// invoque dentro de una transacción (TxRunner); cabecera y líneas deben
// entrar juntas o no entrar.
func (r *InvoiceRepo) Create(invoice *entity.Invoice, details []*entity.InvoiceDetail) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (
			id, company_id, customer_id, prefix, number, date, due_date,
			subtotal, discount_total, tax_total, grand_total, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.Prefix, invoice.Number,
		invoice.Date, invoice.DueDate,
		invoice.Subtotal, invoice.DiscountTotal, invoice.TaxTotal, invoice.GrandTotal,
		invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	detailQuery := `
		INSERT INTO invoice_details (
			id, invoice_id, description, quantity, unit_price, tax_rate, discount_rate,
			subtotal, discount, tax, total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, d := range details {
		_, err := r.q.Exec(ctx, detailQuery,
			d.ID, d.InvoiceID, d.Description, d.Quantity, d.UnitPrice, d.TaxRate, d.DiscountRate,
			d.Subtotal, d.Discount, d.Tax, d.Total,
		)
		if err != nil {
			return fmt.Errorf("insert invoice detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una factura.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, prefix, number, date, due_date,
		       subtotal, discount_total, tax_total, grand_total, status, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Prefix, &inv.Number, &inv.Date, &inv.DueDate,
		&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetDetails obtiene las líneas de una factura, en orden de inserción.
func (r *InvoiceRepo) GetDetails(invoiceID string) ([]*entity.InvoiceDetail, error) {
	query := `
		SELECT id, invoice_id, description, quantity, unit_price, tax_rate, discount_rate,
		       subtotal, discount, tax, total
		FROM invoice_details WHERE invoice_id = $1
		ORDER BY ctid`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice details: %w", err)
	}
	defer rows.Close()

	var out []*entity.InvoiceDetail
	for rows.Next() {
		var d entity.InvoiceDetail
		if err := rows.Scan(
			&d.ID, &d.InvoiceID, &d.Description, &d.Quantity, &d.UnitPrice, &d.TaxRate, &d.DiscountRate,
			&d.Subtotal, &d.Discount, &d.Tax, &d.Total,
		); err != nil {
			return nil, fmt.Errorf("scan invoice detail: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// ListByCompany lista facturas de la empresa, más recientes primero.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, prefix, number, date, due_date,
		       subtotal, discount_total, tax_total, grand_total, status, created_at, updated_at
		FROM invoices WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	return r.queryInvoices(query, companyID, limit, offset)
}

// ListOutstanding lista las facturas pendientes de pago de la empresa.
func (r *InvoiceRepo) ListOutstanding(companyID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, prefix, number, date, due_date,
		       subtotal, discount_total, tax_total, grand_total, status, created_at, updated_at
		FROM invoices WHERE company_id = $1 AND status = $2
		ORDER BY due_date`
	return r.queryInvoices(query, companyID, entity.InvoiceStatusPending)
}

// UpdateStatus cambia el estado de pago de una factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo para el prefijo de la empresa.
// Debe llamarse dentro de la transacción de creación para evitar huecos por
// concurrencia.
func (r *InvoiceRepo) NextNumber(companyID, prefix string) (string, error) {
	query := `
		SELECT COALESCE(MAX(number::bigint), 0)
		FROM invoices
		WHERE company_id = $1 AND prefix = $2 AND number ~ '^[0-9]+$'`
	var last int64
	if err := r.q.QueryRow(context.Background(), query, companyID, prefix).Scan(&last); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return strconv.FormatInt(last+1, 10), nil
}

func (r *InvoiceRepo) queryInvoices(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.Prefix, &inv.Number, &inv.Date, &inv.DueDate,
			&inv.Subtotal, &inv.DiscountTotal, &inv.TaxTotal, &inv.GrandTotal, &inv.Status,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
