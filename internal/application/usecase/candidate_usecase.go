package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

// RosterPDFGenerator puerto para la exportación PDF del listado de
// candidatos; la implementación vive en infrastructure.
type RosterPDFGenerator interface {
	GenerateRosterPDF(business *entity.Business, candidates []*entity.Candidate) ([]byte, error)
}

// ListParams parámetros de listado del panel admin.
type ListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// CandidateUseCase operaciones del panel admin sobre candidatos. Todas
// reciben el businessID derivado de la sesión validada, nunca del cliente.
type CandidateUseCase struct {
	candidates repository.CandidateRepository
	businesses repository.BusinessRepository
	pdf        RosterPDFGenerator
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(candidates repository.CandidateRepository, businesses repository.BusinessRepository, pdf RosterPDFGenerator) *CandidateUseCase {
	return &CandidateUseCase{candidates: candidates, businesses: businesses, pdf: pdf}
}

// List devuelve los candidatos del negocio, más recientes primero, con
// filtro de estado, búsqueda libre sobre nombre/email y paginación.
func (uc *CandidateUseCase) List(businessID string, p ListParams) (*dto.CandidateListResponse, error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Status != "" && !entity.ValidStatus(p.Status) {
		return nil, domain.ErrInvalidInput
	}

	filter := repository.CandidateFilter{
		Status: p.Status,
		Search: p.Search,
		Limit:  p.Limit,
		Offset: (p.Page - 1) * p.Limit,
	}
	total, err := uc.candidates.CountByBusiness(businessID, filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.candidates.ListByBusiness(businessID, filter)
	if err != nil {
		return nil, err
	}

	out := &dto.CandidateListResponse{
		Candidates: make([]dto.CandidateResponse, 0, len(list)),
		Pagination: dto.Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: (total + p.Limit - 1) / p.Limit,
		},
	}
	for _, c := range list {
		out.Candidates = append(out.Candidates, toCandidateResponse(c))
	}
	return out, nil
}

// Update aplica el patch (solo estado y notas). El chequeo de propiedad es
// obligatorio: un candidato de otro negocio responde ErrNotFound sin mutar.
func (uc *CandidateUseCase) Update(businessID, candidateID string, in dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	candidate, err := uc.candidates.GetByBusinessAndID(businessID, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}

	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		candidate.Status = *in.Status
	}
	if in.Notes != nil {
		candidate.Notes = *in.Notes
	}

	if err := uc.candidates.UpdateStatusNotes(businessID, candidateID, candidate.Status, candidate.Notes); err != nil {
		return nil, err
	}
	resp := toCandidateResponse(candidate)
	return &resp, nil
}

// Delete elimina un candidato del negocio; ErrNotFound si no le pertenece.
func (uc *CandidateUseCase) Delete(businessID, candidateID string) error {
	return uc.candidates.Delete(businessID, candidateID)
}

// DeleteAll borra todos los candidatos del negocio y devuelve el conteo.
func (uc *CandidateUseCase) DeleteAll(businessID string) (int64, error) {
	return uc.candidates.DeleteAllByBusiness(businessID)
}

// csvHeader columnas de la exportación, en el orden del formulario.
var csvHeader = []string{
	"nombre", "email", "telefono", "direccion", "fecha_nacimiento", "puesto",
	"experiencia", "educacion", "habilidades", "experiencia_detallada",
	"disponibilidad", "cv_url", "foto_url", "estado", "notas", "fecha_aplicacion",
}

// ExportCSV produce el snapshot CSV completo de los candidatos del negocio.
func (uc *CandidateUseCase) ExportCSV(businessID string) ([]byte, error) {
	list, err := uc.candidates.ListByBusiness(businessID, repository.CandidateFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado CSV: %w", err)
	}
	for _, c := range list {
		record := []string{
			c.Name, c.Email, c.Phone, c.Address, c.BirthDate, c.Position,
			c.Experience, c.Education, c.Skills, c.ExperienceDetail,
			c.Availability, c.CVURL, c.PhotoURL, c.Status, c.Notes,
			c.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF produce el roster PDF de candidatos (misma data que el CSV).
func (uc *CandidateUseCase) ExportPDF(businessID string) ([]byte, error) {
	business, err := uc.businesses.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.candidates.ListByBusiness(businessID, repository.CandidateFilter{})
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateRosterPDF(business, list)
}

func toCandidateResponse(c *entity.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		BirthDate:        c.BirthDate,
		Position:         c.Position,
		Experience:       c.Experience,
		Education:        c.Education,
		Skills:           c.Skills,
		ExperienceDetail: c.ExperienceDetail,
		Availability:     c.Availability,
		CVURL:            c.CVURL,
		PhotoURL:         c.PhotoURL,
		Status:           c.Status,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}
