package dto

import "github.com/shopspring/decimal"

// AgingBucketsDTO cartera por rango de mora. Los montos son los del motor,
// tal cual: la suma de los cinco rangos es la cartera total.
type AgingBucketsDTO struct {
	Current decimal.Decimal `json:"current"`
	Days30  decimal.Decimal `json:"days_30"`
	Days60  decimal.Decimal `json:"days_60"`
	Days90  decimal.Decimal `json:"days_90"`
	Over90  decimal.Decimal `json:"over_90"`
	Total   decimal.Decimal `json:"total"`
}

// AgingInsightDTO resumen de riesgo de la cartera.
type AgingInsightDTO struct {
	RiskLevel          string          `json:"risk_level"` // low | medium | high
	OverduePercentage  decimal.Decimal `json:"overdue_percentage"`
	AverageDaysOverdue decimal.Decimal `json:"average_days_overdue"`
	Recommendations    []string        `json:"recommendations"`
}

// ReceivablesAgingResponse respuesta de GET /api/reports/receivables-aging.
type ReceivablesAgingResponse struct {
	Buckets AgingBucketsDTO `json:"buckets"`
	Insight AgingInsightDTO `json:"insight"`
}
