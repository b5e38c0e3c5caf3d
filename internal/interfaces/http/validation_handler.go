package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain/validation"
	"github.com/jhoicas/facturador/pkg/nif"
	"github.com/jhoicas/facturador/pkg/postal"
)

// ValidationHandler expone las reglas de formato sin necesidad de sesión.
type ValidationHandler struct {
	v *validation.Validator
}

// NewValidationHandler construye el handler.
func NewValidationHandler(v *validation.Validator) *ValidationHandler {
	return &ValidationHandler{v: v}
}

// Validate valida campos sueltos. Los valores vacíos no se consideran error.
// POST /api/validations
func (h *ValidationHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	errs := h.v.Check(in)
	out := dto.ValidateFieldsResponse{Valid: errs.Empty(), Errors: errs}
	if cp, ok := in[validation.FieldPostalCode]; ok {
		out.Province = validation.ProvinceFor(cp)
	}
	if doc, ok := in[validation.FieldDocument]; ok {
		out.DocumentType = string(nif.Classify(doc))
	}
	return c.JSON(out)
}

// Province provincia de un código postal; vacía si el código no es válido.
// GET /api/postal-codes/:cp/province
func (h *ValidationHandler) Province(c *fiber.Ctx) error {
	cp := c.Params("cp")
	return c.JSON(dto.ProvinceResponse{
		PostalCode: cp,
		Valid:      postal.IsPostalCode(cp),
		Province:   validation.ProvinceFor(cp),
	})
}

// Provinces tabla de provincias ordenada por código.
// GET /api/provinces
func (h *ValidationHandler) Provinces(c *fiber.Ctx) error {
	return c.JSON(postal.Provinces())
}
