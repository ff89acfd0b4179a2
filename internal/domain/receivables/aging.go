// Package receivables clasifica la cartera vencida por antigüedad y deriva
// un nivel de riesgo con recomendaciones fijas. Cada factura cae completa en
// un único rango, así la suma de los rangos siempre iguala la cartera total
// sin fuga de redondeo.
package receivables

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/domain/money"
)

// Outstanding es una factura pendiente de pago: saldo y fecha de vencimiento.
type Outstanding struct {
	Amount  money.Money
	DueDate time.Time
}

// Buckets agrupa la cartera por días de mora (rangos inclusivos).
type Buckets struct {
	Current money.Money // aún no vencida (mora ≤ 0)
	Days30  money.Money // 1–30
	Days60  money.Money // 31–60
	Days90  money.Money // 61–90
	Over90  money.Money // 91+
}

// Total devuelve la suma de los cinco rangos.
func (b Buckets) Total() money.Money {
	return money.Sum(b.Current, b.Days30, b.Days60, b.Days90, b.Over90)
}

// RiskLevel es el nivel de riesgo de la cartera, ordenado de menor a mayor.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

// String devuelve el nombre del nivel.
func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// Umbrales de riesgo sobre la proporción de cartera vencida.
var (
	HighOverdueRatio   = decimal.NewFromFloat(0.5)
	MediumOverdueRatio = decimal.NewFromFloat(0.25)
)

const (
	HighAvgOverdueDays   = 60
	MediumAvgOverdueDays = 30
)

// Insight resume el estado de la cartera.
type Insight struct {
	RiskLevel          RiskLevel
	OverduePercentage  decimal.Decimal // (total − current) / total, 0 si total es 0
	AverageDaysOverdue decimal.Decimal // promedio sobre facturas con mora > 0
	Recommendations    []string
}

// recommendations es la tabla fija de recomendaciones por nivel.
var recommendations = map[RiskLevel][]string{
	RiskLow: {
		"La cartera está sana; mantener el seguimiento mensual.",
	},
	RiskMedium: {
		"Enviar recordatorios de pago a los clientes con saldos vencidos.",
		"Revisar las condiciones de crédito otorgadas.",
	},
	RiskHigh: {
		"Priorizar la gestión de cobro de los saldos más antiguos.",
		"Suspender nuevos despachos a crédito hasta normalizar la cartera.",
		"Evaluar cobro jurídico para saldos con más de 90 días de mora.",
	},
}

// Classify agrupa las facturas pendientes por días de mora a la fecha de
// evaluación y deriva el nivel de riesgo. La mora se cuenta en días
// calendario completos (truncando ambas fechas a medianoche UTC).
func Classify(invoices []Outstanding, now time.Time) (Buckets, Insight) {
	var b Buckets
	var overdueCount int64
	var overdueDaysSum int64

	for _, inv := range invoices {
		days := daysOverdue(inv.DueDate, now)
		switch {
		case days <= 0:
			b.Current = b.Current.Add(inv.Amount)
		case days <= 30:
			b.Days30 = b.Days30.Add(inv.Amount)
		case days <= 60:
			b.Days60 = b.Days60.Add(inv.Amount)
		case days <= 90:
			b.Days90 = b.Days90.Add(inv.Amount)
		default:
			b.Over90 = b.Over90.Add(inv.Amount)
		}
		if days > 0 {
			overdueCount++
			overdueDaysSum += int64(days)
		}
	}

	total := b.Total()
	overdue := total.Sub(b.Current)

	overduePct := money.Ratio(overdue, total)
	avgDays := decimal.Zero
	if overdueCount > 0 {
		avgDays = decimal.NewFromInt(overdueDaysSum).Div(decimal.NewFromInt(overdueCount))
	}

	level := riskFromRatio(overduePct)
	if byDays := riskFromAvgDays(avgDays); byDays > level {
		level = byDays
	}

	return b, Insight{
		RiskLevel:          level,
		OverduePercentage:  overduePct,
		AverageDaysOverdue: avgDays,
		Recommendations:    recommendations[level],
	}
}

// daysOverdue cuenta días calendario completos entre el vencimiento y la
// fecha de evaluación. Cero o negativo significa que aún no vence.
func daysOverdue(due, now time.Time) int {
	d := midnightUTC(due)
	n := midnightUTC(now)
	return int(n.Sub(d) / (24 * time.Hour))
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func riskFromRatio(pct decimal.Decimal) RiskLevel {
	switch {
	case pct.GreaterThan(HighOverdueRatio):
		return RiskHigh
	case pct.GreaterThan(MediumOverdueRatio):
		return RiskMedium
	default:
		return RiskLow
	}
}

func riskFromAvgDays(avg decimal.Decimal) RiskLevel {
	switch {
	case avg.GreaterThan(decimal.NewFromInt(HighAvgOverdueDays)):
		return RiskHigh
	case avg.GreaterThan(decimal.NewFromInt(MediumAvgOverdueDays)):
		return RiskMedium
	default:
		return RiskLow
	}
}
