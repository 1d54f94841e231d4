package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain"
)

// ApplyHandler recibe postulaciones del formulario público.
type ApplyHandler struct {
	uc *usecase.ApplyUseCase
}

// NewApplyHandler construye el handler.
func NewApplyHandler(uc *usecase.ApplyUseCase) *ApplyHandler {
	return &ApplyHandler{uc: uc}
}

// Submit godoc
// @Summary      Enviar una postulación
// @Description  Registra un candidato para el negocio identificado por su slug y dispara las notificaciones configuradas.
// @Tags         apply
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequest  true  "datos del candidato"
// @Success      201  {object}  dto.SubmitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates [post]
func (h *ApplyHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Slug == "" || in.Name == "" || in.Email == "" || in.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slug, nombre, email y teléfono son obligatorios"})
	}
	out, err := h.uc.Submit(in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		case domain.ErrApplicationsClosed:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "APPLICATIONS_CLOSED", Message: "el negocio no está recibiendo postulaciones"})
		case domain.ErrDuplicateSubmission:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_APPLIED", Message: "ya existe una postulación con ese email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
