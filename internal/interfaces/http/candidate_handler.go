package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain"
)

// CandidateHandler maneja el panel admin de candidatos (protegido).
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
}

// NewCandidateHandler construye el handler.
func NewCandidateHandler(uc *usecase.CandidateUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// List godoc
// @Summary      Listar candidatos del negocio
// @Tags         candidates
// @Produce      json
// @Param        status  query  string  false  "filtro por estado"
// @Param        search  query  string  false  "búsqueda por nombre o email"
// @Param        page    query  int     false  "página (default 1)"
// @Param        limit   query  int     false  "tamaño de página (default 20)"
// @Success      200  {object}  dto.CandidateListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	out, err := h.uc.List(GetBusinessID(c), usecase.ListParams{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar candidatos en CSV
// @Tags         candidates
// @Produce      text/csv
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/candidates/export [get]
func (h *CandidateHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidatos.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar candidatos en PDF
// @Tags         candidates
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/candidates/export/pdf [get]
func (h *CandidateHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ExportPDF(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidatos.pdf"`)
	return c.Send(data)
}

// Update godoc
// @Summary      Actualizar estado y notas de un candidato
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del candidato"
// @Param        body  body  dto.UpdateCandidateRequest  true  "status, notes"
// @Success      200  {object}  dto.CandidateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [patch]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	candidate, err := h.uc.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(candidate)
}

// Delete godoc
// @Summary      Eliminar un candidato
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "id del candidato"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "candidato no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteAll godoc
// @Summary      Eliminar todos los candidatos del negocio
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  dto.DeleteAllResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/candidates [delete]
func (h *CandidateHandler) DeleteAll(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteAll(GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DeleteAllResponse{Deleted: deleted})
}
