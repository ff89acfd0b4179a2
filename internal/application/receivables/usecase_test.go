package receivables_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreceivables "github.com/tu-usuario/gestion-pyme/internal/application/receivables"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// fakeInvoiceRepo sirve las facturas pendientes en memoria; solo el método
// ListOutstanding importa para este caso de uso.
type fakeInvoiceRepo struct {
	outstanding []*entity.Invoice
}

func (f *fakeInvoiceRepo) Create(*entity.Invoice, []*entity.InvoiceDetail) error { return nil }
func (f *fakeInvoiceRepo) GetByID(string) (*entity.Invoice, error)               { return nil, nil }
func (f *fakeInvoiceRepo) GetDetails(string) ([]*entity.InvoiceDetail, error)    { return nil, nil }
func (f *fakeInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListOutstanding(string) ([]*entity.Invoice, error) {
	return f.outstanding, nil
}
func (f *fakeInvoiceRepo) UpdateStatus(string, string) error        { return nil }
func (f *fakeInvoiceRepo) NextNumber(string, string) (string, error) { return "1", nil }

func pendingInvoice(grandTotal string, dueDate time.Time) *entity.Invoice {
	return &entity.Invoice{
		CompanyID:  "co-1",
		GrandTotal: decimal.RequireFromString(grandTotal),
		DueDate:    dueDate,
		Status:     entity.InvoiceStatusPending,
	}
}

func TestAging_CarteraAlDia(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeInvoiceRepo{outstanding: []*entity.Invoice{
		pendingInvoice("500.00", now.AddDate(0, 0, 10)),
		pendingInvoice("300.00", now.AddDate(0, 0, 25)),
	}}
	uc := appreceivables.NewUseCase(repo)

	report, err := uc.Aging("co-1", now)
	require.NoError(t, err)

	assert.True(t, report.Buckets.Current.Equal(decimal.RequireFromString("800.00")),
		"toda la cartera debe quedar en el rango al día")
	assert.True(t, report.Buckets.Total.Equal(decimal.RequireFromString("800.00")))
	assert.Equal(t, "low", report.Insight.RiskLevel)
	assert.True(t, report.Insight.OverduePercentage.IsZero())
}

func TestAging_RepartePorRangosYRiesgo(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeInvoiceRepo{outstanding: []*entity.Invoice{
		pendingInvoice("100.00", now.AddDate(0, 0, 5)),   // al día
		pendingInvoice("200.00", now.AddDate(0, 0, -15)), // 1-30
		pendingInvoice("700.00", now.AddDate(0, 0, -120)), // >90
	}}
	uc := appreceivables.NewUseCase(repo)

	report, err := uc.Aging("co-1", now)
	require.NoError(t, err)

	assert.True(t, report.Buckets.Current.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, report.Buckets.Days30.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, report.Buckets.Over90.Equal(decimal.RequireFromString("700.00")))
	assert.True(t, report.Buckets.Total.Equal(decimal.RequireFromString("1000.00")),
		"la suma de los rangos debe ser la cartera total")

	// 90% vencido y promedio de mora alto: riesgo alto con recomendaciones.
	assert.Equal(t, "high", report.Insight.RiskLevel)
	assert.NotEmpty(t, report.Insight.Recommendations)
}

func TestAging_SinCartera(t *testing.T) {
	uc := appreceivables.NewUseCase(&fakeInvoiceRepo{})

	report, err := uc.Aging("co-1", time.Now())
	require.NoError(t, err)

	assert.True(t, report.Buckets.Total.IsZero())
	assert.Equal(t, "low", report.Insight.RiskLevel)
}
