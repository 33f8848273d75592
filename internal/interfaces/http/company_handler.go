package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/application/usecase"
	"github.com/jhoicas/bill-automation-api/internal/domain"
)

// CompanyHandler maneja perfiles de empresa, selección de empresa activa y firma.
type CompanyHandler struct {
	uc               *usecase.CompanyUseCase
	signatures       *usecase.SignatureUseCase
	defaultCompanyID string
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, signatures *usecase.SignatureUseCase, defaultCompanyID string) *CompanyHandler {
	return &CompanyHandler{uc: uc, signatures: signatures, defaultCompanyID: defaultCompanyID}
}

// companyID empresa explícita, o la seleccionada en el token, o la configurada por defecto.
func (h *CompanyHandler) companyID(c *fiber.Ctx, explicit string) string {
	return resolveCompanyID(c, explicit, h.defaultCompanyID)
}

func resolveCompanyID(c *fiber.Ctx, explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if id := GetCompanyID(c); id != "" {
		return id
	}
	return fallback
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanySummary
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Perfil de empresa
// @Tags         companies
// @Produce      json
// @Param        id   query  string  false  "ID de la empresa (por defecto la seleccionada)"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), h.companyID(c, c.Query("id")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Select godoc
// @Summary      Seleccionar empresa activa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectCompanyRequest  true  "companyId"
// @Success      200   {object}  dto.SelectCompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company/select [post]
func (h *CompanyHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectCompanyRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Select(c.UserContext(), GetSubject(c), in.CompanyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar perfil de la empresa seleccionada
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Perfil completo"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/company [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), h.companyID(c, c.Query("id")), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadSignature godoc
// @Summary      Subir firma escaneada de la empresa seleccionada
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        signature  formData  file  true  "Imagen de la firma"
// @Param        companyId  formData  string  false  "ID de la empresa (por defecto la seleccionada)"
// @Success      200  {object}  dto.SignatureUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload-signature [post]
func (h *CompanyHandler) UploadSignature(c *fiber.Ctx) error {
	fh, err := c.FormFile("signature")
	if err != nil {
		return respondError(c, domain.NewValidationError("signature", "archivo requerido"))
	}
	if fh.Size > usecase.MaxSignatureBytes {
		return respondError(c, domain.NewValidationError("signature", "archivo demasiado grande"))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, domain.NewValidationError("signature", "no se pudo leer el archivo"))
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxSignatureBytes+1))
	if err != nil {
		return respondError(c, domain.NewValidationError("signature", "no se pudo leer el archivo"))
	}
	out, err := h.signatures.Upload(c.UserContext(), h.companyID(c, c.FormValue("companyId")), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSignature godoc
// @Summary      Firma de la empresa seleccionada (PNG)
// @Tags         companies
// @Produce      png
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company/signature [get]
func (h *CompanyHandler) GetSignature(c *fiber.Ctx) error {
	data, err := h.signatures.Get(c.UserContext(), h.companyID(c, c.Query("id")))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(data)
}
