package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/infrastructure/qr"
)

// BusinessHandler maneja el perfil público del negocio, su QR y la
// configuración del panel admin.
type BusinessHandler struct {
	uc            *usecase.BusinessUseCase
	qr            *qr.Generator
	publicBaseURL string
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase, qrGen *qr.Generator, publicBaseURL string) *BusinessHandler {
	return &BusinessHandler{uc: uc, qr: qrGen, publicBaseURL: publicBaseURL}
}

// PublicBySlug godoc
// @Summary      Información pública de un negocio
// @Tags         business
// @Produce      json
// @Param        slug  path  string  true  "slug del negocio"
// @Success      200  {object}  dto.PublicBusiness
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/{slug} [get]
func (h *BusinessHandler) PublicBySlug(c *fiber.Ctx) error {
	business, err := h.uc.GetPublicBySlug(c.Params("slug"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(business)
}

// QRBySlug godoc
// @Summary      QR del enlace público de aplicación
// @Tags         business
// @Produce      png
// @Param        slug  path  string  true  "slug del negocio"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/{slug}/qr [get]
func (h *BusinessHandler) QRBySlug(c *fiber.Ctx) error {
	business, err := h.uc.GetPublicBySlug(c.Params("slug"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	image, err := h.qr.EncodePNG(h.publicBaseURL + "/aplicar/" + business.Slug)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(image)
}

// UpdateConfig godoc
// @Summary      Actualizar perfil y configuración del negocio
// @Tags         business
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateConfigRequest  true  "patch disperso"
// @Success      200  {object}  dto.BusinessProfile
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/business/config [patch]
func (h *BusinessHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.UpdateConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.UpdateConfig(GetBusinessID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(profile)
}
