package usecase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

const (
	negocioA = "00000000-0000-0000-0000-00000000000a"
	negocioB = "00000000-0000-0000-0000-00000000000b"
)

func candidato(id, businessID, name, email, status string, age time.Duration) *entity.Candidate {
	return &entity.Candidate{
		ID:         id,
		BusinessID: businessID,
		Name:       name,
		Email:      email,
		Phone:      "555-0000",
		Status:     status,
		CreatedAt:  time.Now().Add(-age),
	}
}

func newCandidateUC(candidates *fakeCandidateRepo, businesses *fakeBusinessRepo) *usecase.CandidateUseCase {
	return usecase.NewCandidateUseCase(candidates, businesses, fakePDFGenerator{})
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_OrdenYPaginacion(t *testing.T) {
	repo := newFakeCandidateRepo()
	for i := 0; i < 45; i++ {
		c := candidato(fmt.Sprintf("c%02d", i), negocioA,
			fmt.Sprintf("Persona %02d", i), fmt.Sprintf("p%02d@test.com", i),
			entity.StatusNew, time.Duration(i)*time.Minute)
		require.NoError(t, repo.Create(c))
	}
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	out, err := uc.List(negocioA, usecase.ListParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, out.Candidates, 20)
	assert.Equal(t, 45, out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.TotalPages, "45 con límite 20 son 3 páginas")
	assert.Equal(t, "Persona 00", out.Candidates[0].Name, "más reciente primero")

	out, err = uc.List(negocioA, usecase.ListParams{Page: 3, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, out.Candidates, 5, "la última página trae el resto")
}

func TestList_DefaultsYEstadoInvalido(t *testing.T) {
	uc := newCandidateUC(newFakeCandidateRepo(), newFakeBusinessRepo())

	out, err := uc.List(negocioA, usecase.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 20, out.Pagination.Limit)
	assert.NotNil(t, out.Candidates, "lista vacía, nunca nil")

	_, err = uc.List(negocioA, usecase.ListParams{Status: "pendiente"})
	assert.Equal(t, domain.ErrInvalidInput, err, "estado fuera del enum")
}

func TestList_FiltroPorEstadoYBusqueda(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana Pérez", "ana@test.com", entity.StatusNew, time.Minute),
		candidato("c2", negocioA, "Luis Gómez", "luis@test.com", entity.StatusHired, 2*time.Minute),
		candidato("c3", negocioB, "Ana Otra", "ana@otro.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	out, err := uc.List(negocioA, usecase.ListParams{Status: entity.StatusHired})
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	assert.Equal(t, "Luis Gómez", out.Candidates[0].Name)

	out, err = uc.List(negocioA, usecase.ListParams{Search: "ana"})
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1, "la búsqueda nunca cruza de negocio")
	assert.Equal(t, "Ana Pérez", out.Candidates[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EstadoYNotas(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	status := entity.StatusContacted
	notes := "entrevista el lunes"
	out, err := uc.Update(negocioA, "c1", dto.UpdateCandidateRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, out.Status)
	assert.Equal(t, "entrevista el lunes", out.Notes)

	// Patch de solo notas: el estado queda como estaba.
	soloNotas := "no contestó"
	out, err = uc.Update(negocioA, "c1", dto.UpdateCandidateRequest{Notes: &soloNotas})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, out.Status)
	assert.Equal(t, "no contestó", out.Notes)
}

func TestUpdate_EstadoInvalido(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	malo := "aprobadisimo"
	_, err := uc.Update(negocioA, "c1", dto.UpdateCandidateRequest{Status: &malo})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestUpdate_OtroNegocioNoMuta(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	status := entity.StatusRejected
	_, err := uc.Update(negocioB, "c1", dto.UpdateCandidateRequest{Status: &status})
	assert.Equal(t, domain.ErrNotFound, err,
		"un candidato ajeno es indistinguible de uno inexistente")

	stored, _ := repo.GetByBusinessAndID(negocioA, "c1")
	require.NotNil(t, stored)
	assert.Equal(t, entity.StatusNew, stored.Status, "el candidato no debe mutar")
}

func TestDelete_CruceDeNegocio(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	assert.Equal(t, domain.ErrNotFound, uc.Delete(negocioB, "c1"))
	assert.NoError(t, uc.Delete(negocioA, "c1"))
	assert.Equal(t, domain.ErrNotFound, uc.Delete(negocioA, "c1"), "ya borrado")
}

func TestDeleteAll_SoloElNegocio(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
		candidato("c2", negocioA, "Luis", "luis@test.com", entity.StatusHired, 2*time.Minute),
		candidato("c3", negocioB, "Otro", "otro@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	deleted, err := uc.DeleteAll(negocioA)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	quedan, _ := repo.CountByBusiness(negocioB, repository.CandidateFilter{})
	assert.Equal(t, 1, quedan, "los candidatos de otro negocio sobreviven")
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSV_ContenidoYOrden(t *testing.T) {
	repo := newFakeCandidateRepo(
		candidato("c1", negocioA, "Ana Pérez", "ana@test.com", entity.StatusHired, 2*time.Minute),
		candidato("c2", negocioA, "Luis", "luis@test.com", entity.StatusNew, time.Minute),
	)
	uc := newCandidateUC(repo, newFakeBusinessRepo())

	data, err := uc.ExportCSV(negocioA)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "encabezado + dos filas")
	assert.True(t, strings.HasPrefix(lines[0], "nombre,email,telefono"),
		"el encabezado va en español")
	assert.Contains(t, lines[1], "luis@test.com", "más reciente primero")
	assert.Contains(t, lines[2], "Ana Pérez")
	assert.Contains(t, lines[2], entity.StatusHired)
}

func TestExportPDF_NegocioInexistente(t *testing.T) {
	uc := newCandidateUC(newFakeCandidateRepo(), newFakeBusinessRepo())

	_, err := uc.ExportPDF("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestExportPDF_DelegaEnElGenerador(t *testing.T) {
	businesses := newFakeBusinessRepo(&entity.Business{ID: negocioA, Name: "Café Luna"})
	uc := newCandidateUC(newFakeCandidateRepo(), businesses)

	data, err := uc.ExportPDF(negocioA)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
