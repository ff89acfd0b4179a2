// Package receivables arma el reporte de antigüedad de cartera para los
// dashboards: carga las facturas pendientes y delega la clasificación al
// motor de dominio.
package receivables

import (
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain/money"
	domainrecv "github.com/tu-usuario/gestion-pyme/internal/domain/receivables"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// UseCase genera el reporte de antigüedad de cartera.
type UseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoiceRepo repository.InvoiceRepository) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo}
}

// Aging clasifica la cartera pendiente de la empresa a la fecha now.
func (uc *UseCase) Aging(companyID string, now time.Time) (*dto.ReceivablesAgingResponse, error) {
	pending, err := uc.invoiceRepo.ListOutstanding(companyID)
	if err != nil {
		return nil, err
	}

	outstanding := make([]domainrecv.Outstanding, 0, len(pending))
	for _, inv := range pending {
		outstanding = append(outstanding, domainrecv.Outstanding{
			Amount:  money.FromDecimal(inv.GrandTotal),
			DueDate: inv.DueDate,
		})
	}

	buckets, insight := domainrecv.Classify(outstanding, now)
	return &dto.ReceivablesAgingResponse{
		Buckets: dto.AgingBucketsDTO{
			Current: buckets.Current.Decimal(),
			Days30:  buckets.Days30.Decimal(),
			Days60:  buckets.Days60.Decimal(),
			Days90:  buckets.Days90.Decimal(),
			Over90:  buckets.Over90.Decimal(),
			Total:   buckets.Total().Decimal(),
		},
		Insight: dto.AgingInsightDTO{
			RiskLevel:          insight.RiskLevel.String(),
			OverduePercentage:  insight.OverduePercentage,
			AverageDaysOverdue: insight.AverageDaysOverdue,
			Recommendations:    insight.Recommendations,
		},
	}, nil
}
