package receivables_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/domain/money"
	"github.com/tu-usuario/gestion-pyme/internal/domain/receivables"
)

var evalDate = time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

func inv(cents int64, daysOverdue int) receivables.Outstanding {
	return receivables.Outstanding{
		Amount:  money.FromCents(cents),
		DueDate: evalDate.AddDate(0, 0, -daysOverdue),
	}
}

// checkPartition verifica que los cinco rangos sumen exactamente la cartera.
func checkPartition(t *testing.T, b receivables.Buckets, invoices []receivables.Outstanding) {
	t.Helper()
	var total money.Money
	for _, i := range invoices {
		total = total.Add(i.Amount)
	}
	assert.Equal(t, total.Cents(), b.Total().Cents(),
		"los rangos deben sumar la cartera total sin fuga")
}

// Escenario: todas las facturas con vencimiento futuro ⇒ todo en Current,
// riesgo low y porcentaje vencido 0.
func TestClassify_TodoVigente(t *testing.T) {
	invoices := []receivables.Outstanding{
		inv(10000, -5),
		inv(25000, -30),
		inv(999, 0), // vence hoy: aún no está en mora
	}
	b, ins := receivables.Classify(invoices, evalDate)

	assert.Equal(t, int64(35999), b.Current.Cents())
	assert.True(t, b.Days30.IsZero())
	assert.Equal(t, receivables.RiskLow, ins.RiskLevel)
	assert.True(t, ins.OverduePercentage.IsZero())
	assert.True(t, ins.AverageDaysOverdue.IsZero())
	checkPartition(t, b, invoices)
}

func TestClassify_BordesDeRango(t *testing.T) {
	invoices := []receivables.Outstanding{
		inv(100, 1),   // Days30
		inv(200, 30),  // Days30 (inclusivo)
		inv(300, 31),  // Days60
		inv(400, 60),  // Days60
		inv(500, 61),  // Days90
		inv(600, 90),  // Days90
		inv(700, 91),  // Over90
		inv(800, 400), // Over90
	}
	b, _ := receivables.Classify(invoices, evalDate)

	assert.Equal(t, int64(300), b.Days30.Cents())
	assert.Equal(t, int64(700), b.Days60.Cents())
	assert.Equal(t, int64(1100), b.Days90.Cents())
	assert.Equal(t, int64(1500), b.Over90.Cents())
	assert.True(t, b.Current.IsZero())
	checkPartition(t, b, invoices)
}

func TestClassify_CadaFacturaEnUnSoloRango(t *testing.T) {
	// Montos con centavos sueltos: si alguna factura se partiera entre
	// rangos, el redondeo rompería la partición.
	invoices := []receivables.Outstanding{
		inv(3333, -10), inv(6667, 15), inv(101, 45), inv(9999, 75), inv(1, 120),
	}
	b, _ := receivables.Classify(invoices, evalDate)
	checkPartition(t, b, invoices)
	assert.Equal(t, int64(3333), b.Current.Cents())
	assert.Equal(t, int64(6667), b.Days30.Cents())
	assert.Equal(t, int64(101), b.Days60.Cents())
	assert.Equal(t, int64(9999), b.Days90.Cents())
	assert.Equal(t, int64(1), b.Over90.Cents())
}

func TestClassify_CarteraVacia(t *testing.T) {
	b, ins := receivables.Classify(nil, evalDate)

	assert.True(t, b.Total().IsZero())
	assert.Equal(t, receivables.RiskLow, ins.RiskLevel)
	assert.True(t, ins.OverduePercentage.IsZero(), "cartera cero no produce NaN ni pánico")
	assert.True(t, ins.AverageDaysOverdue.IsZero())
}

func TestClassify_PorcentajeYPromedio(t *testing.T) {
	invoices := []receivables.Outstanding{
		inv(5000, -10), // vigente
		inv(3000, 10),
		inv(2000, 20),
	}
	_, ins := receivables.Classify(invoices, evalDate)

	// vencido 50.00 de 100.00 ⇒ 0.5
	assert.True(t, ins.OverduePercentage.Equal(decimal.NewFromFloat(0.5)),
		"porcentaje vencido: %s", ins.OverduePercentage)
	// promedio solo sobre facturas en mora: (10+20)/2 = 15
	assert.True(t, ins.AverageDaysOverdue.Equal(decimal.NewFromInt(15)),
		"promedio de mora: %s", ins.AverageDaysOverdue)
	// 0.5 no es "mayor que 0.5": medium exige > 0.25
	assert.Equal(t, receivables.RiskMedium, ins.RiskLevel)
}

func TestClassify_NivelesDeRiesgo(t *testing.T) {
	cases := []struct {
		name     string
		invoices []receivables.Outstanding
		want     receivables.RiskLevel
	}{
		{
			// 10% vencido, mora corta
			"low", []receivables.Outstanding{inv(9000, -5), inv(1000, 5)},
			receivables.RiskLow,
		},
		{
			// 30% vencido
			"medium por porcentaje", []receivables.Outstanding{inv(7000, -5), inv(3000, 5)},
			receivables.RiskMedium,
		},
		{
			// 10% vencido pero con mora promedio de 45 días
			"medium por promedio", []receivables.Outstanding{inv(9000, -5), inv(1000, 45)},
			receivables.RiskMedium,
		},
		{
			// 60% vencido
			"high por porcentaje", []receivables.Outstanding{inv(4000, -5), inv(6000, 5)},
			receivables.RiskHigh,
		},
		{
			// 10% vencido pero con 100 días de mora promedio
			"high por promedio", []receivables.Outstanding{inv(9000, -5), inv(1000, 100)},
			receivables.RiskHigh,
		},
		{
			// porcentaje dice medium, promedio dice high: gana el más estricto
			"el mas estricto gana", []receivables.Outstanding{inv(7000, -5), inv(3000, 90)},
			receivables.RiskHigh,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ins := receivables.Classify(c.invoices, evalDate)
			assert.Equal(t, c.want, ins.RiskLevel, "esperado %s, fue %s", c.want, ins.RiskLevel)
		})
	}
}

func TestClassify_RecomendacionesPorNivel(t *testing.T) {
	_, low := receivables.Classify([]receivables.Outstanding{inv(100, -1)}, evalDate)
	require.NotEmpty(t, low.Recommendations)

	_, high := receivables.Classify([]receivables.Outstanding{inv(100, 120)}, evalDate)
	assert.Greater(t, len(high.Recommendations), len(low.Recommendations),
		"riesgo alto trae más recomendaciones que riesgo bajo")
}

func TestClassify_MoraEnDiasCalendario(t *testing.T) {
	// Vencía ayer a las 23:59; a las 00:01 de hoy ya cuenta un día de mora,
	// sin importar la hora del día.
	due := time.Date(2026, 6, 29, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 6, 30, 0, 1, 0, 0, time.UTC)
	b, _ := receivables.Classify([]receivables.Outstanding{{Amount: money.FromCents(100), DueDate: due}}, now)
	assert.Equal(t, int64(100), b.Days30.Cents())
}

func TestClassify_Determinista(t *testing.T) {
	invoices := []receivables.Outstanding{inv(5000, -10), inv(3000, 10), inv(2000, 95)}
	b1, i1 := receivables.Classify(invoices, evalDate)
	b2, i2 := receivables.Classify(invoices, evalDate)
	assert.Equal(t, b1, b2)
	assert.Equal(t, i1.RiskLevel, i2.RiskLevel)
	assert.True(t, i1.OverduePercentage.Equal(i2.OverduePercentage))
}
