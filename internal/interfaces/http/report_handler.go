package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appreceivables "github.com/tu-usuario/gestion-pyme/internal/application/receivables"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
)

// ReportHandler maneja los reportes de la empresa (protegido).
type ReportHandler struct {
	receivablesUC *appreceivables.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(receivablesUC *appreceivables.UseCase) *ReportHandler {
	return &ReportHandler{receivablesUC: receivablesUC}
}

// ReceivablesAging godoc
// @Summary      Antigüedad de cartera
// @Description  Clasifica la cartera pendiente en rangos de mora y calcula el nivel de riesgo.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReceivablesAgingResponse
// @Router       /api/reports/receivables-aging [get]
func (h *ReportHandler) ReceivablesAging(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	report, err := h.receivablesUC.Aging(companyID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
