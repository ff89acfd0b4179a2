package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/tu-usuario/gestion-pyme/internal/application/billing"
	appcompliance "github.com/tu-usuario/gestion-pyme/internal/application/compliance"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
)

// CustomerHandler maneja clientes, su perfil tributario y el reporte de
// cumplimiento (protegido).
type CustomerHandler struct {
	uc           *appbilling.CustomerUseCase
	complianceUC *appcompliance.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *appbilling.CustomerUseCase, complianceUC *appcompliance.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, complianceUC: complianceUC}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(companyID, in)
	if err != nil {
		var taxErr *appbilling.TaxIDError
		if errors.As(err, &taxErr) {
			resp := dto.ErrorResponse{Code: "INVALID_TAX_ID", Message: taxErr.Error()}
			for _, e := range taxErr.Result.Errors {
				resp.Fields = append(resp.Fields, dto.FieldErrorDTO{Field: "tax_id", Message: e.Message})
			}
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese identificador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.GetByID(companyID, c.Params("id"))
	if err != nil {
		return h.mapCustomerErr(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpsertTaxProfile godoc
// @Summary      Crear o actualizar el perfil tributario del cliente
// @Tags         customers
// @Accept       json
// @Param        id    path  string                       true  "ID del cliente"
// @Param        body  body  dto.UpsertTaxProfileRequest  true  "Perfil tributario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/tax-profile [put]
func (h *CustomerHandler) UpsertTaxProfile(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpsertTaxProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.complianceUC.UpsertProfile(companyID, c.Params("id"), in); err != nil {
		return h.mapCustomerErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Compliance godoc
// @Summary      Reporte de cumplimiento tributario del cliente
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ComplianceReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/compliance [get]
func (h *CustomerHandler) Compliance(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	report, err := h.complianceUC.Evaluate(companyID, c.Params("id"), time.Now())
	if err != nil {
		return h.mapCustomerErr(c, err)
	}
	return c.JSON(report)
}

func (h *CustomerHandler) mapCustomerErr(c *fiber.Ctx, err error) error {
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
