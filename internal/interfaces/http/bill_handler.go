package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
)

// BillHandler emisión de facturas de flete e historial.
type BillHandler struct {
	generate         *billing.GenerateBillUseCase
	sequence         *billing.SequenceUseCase
	history          *billing.HistoryUseCase
	defaultCompanyID string
}

// NewBillHandler construye el handler.
func NewBillHandler(
	generate *billing.GenerateBillUseCase,
	sequence *billing.SequenceUseCase,
	history *billing.HistoryUseCase,
	defaultCompanyID string,
) *BillHandler {
	return &BillHandler{generate: generate, sequence: sequence, history: history, defaultCompanyID: defaultCompanyID}
}

// Generate godoc
// @Summary      Generar factura (PDF)
// @Description  Asigna el siguiente número si billNo viene vacío, registra la factura y devuelve el PDF.
// @Tags         bills
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateBillRequest  true  "Borrador de factura"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/generate-bill [post]
func (h *BillHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateBillRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	companyID := resolveCompanyID(c, in.CompanyID, h.defaultCompanyID)
	out, err := h.generate.Generate(c.UserContext(), companyID, GetUsername(c), billing.DraftFromRequest(in))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", out.Filename))
	c.Set("X-Bill-Number", out.BillNumber)
	c.Set("X-Bill-Record-ID", out.RecordID)
	return c.Send(out.PDF)
}

// NextNumber godoc
// @Summary      Próximo número de factura (sin consumirlo)
// @Tags         bills
// @Produce      json
// @Success      200  {object}  dto.NextBillNumberResponse
// @Router       /api/bills/next-number [get]
func (h *BillHandler) NextNumber(c *fiber.Ctx) error {
	companyID := resolveCompanyID(c, c.Query("companyId"), h.defaultCompanyID)
	last, next, err := h.sequence.Peek(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NextBillNumberResponse{CompanyID: companyID, LastBillNumber: last, NextBillNumber: next})
}

// Last godoc
// @Summary      Última factura de cada empresa
// @Tags         bills
// @Produce      json
// @Success      200  {array}  dto.LastBillResponse
// @Router       /api/bills/last [get]
func (h *BillHandler) Last(c *fiber.Ctx) error {
	out, err := h.history.LastPerCompany(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de facturas de la empresa seleccionada
// @Tags         bills
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.BillListResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.NewValidationError("query", "parámetros de paginación inválidos"))
	}
	if err := validateStruct(&page); err != nil {
		return respondError(c, err)
	}
	companyID := resolveCompanyID(c, c.Query("companyId"), h.defaultCompanyID)
	out, err := h.history.List(c.UserContext(), companyID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Registro de facturas en Excel
// @Tags         bills
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/bills/export [get]
func (h *BillHandler) Export(c *fiber.Ctx) error {
	companyID := resolveCompanyID(c, c.Query("companyId"), h.defaultCompanyID)
	data, filename, err := h.history.Export(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}

// Get godoc
// @Summary      Registro de auditoría de una factura
// @Tags         bills
// @Produce      json
// @Param        id   path  string  true  "ID del registro (X-Bill-Record-ID)"
// @Success      200  {object}  dto.BillRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [get]
func (h *BillHandler) Get(c *fiber.Ctx) error {
	out, err := h.history.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
