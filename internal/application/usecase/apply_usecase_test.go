package usecase_test

import (
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

// fakeNotifier captura la notificación despachada en segundo plano.
type fakeNotifier struct {
	notified chan *entity.Candidate
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan *entity.Candidate, 1)}
}

func (n *fakeNotifier) NotifyNewCandidate(_ *entity.Business, c *entity.Candidate) {
	n.notified <- c
}

func negocioAbierto() *entity.Business {
	return &entity.Business{
		ID:        negocioA,
		Name:      "Café Luna",
		Slug:      "cafe-luna-abc123",
		Accepting: true,
	}
}

func TestSubmit_SlugDesconocido(t *testing.T) {
	uc := usecase.NewApplyUseCase(newFakeBusinessRepo(), newFakeCandidateRepo(), newFakeNotifier())

	_, err := uc.Submit(dto.SubmitRequest{Slug: "no-existe", Name: "Ana", Email: "a@t.com", Phone: "555"})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestSubmit_NegocioCerrado(t *testing.T) {
	cerrado := negocioAbierto()
	cerrado.Accepting = false
	uc := usecase.NewApplyUseCase(newFakeBusinessRepo(cerrado), newFakeCandidateRepo(), newFakeNotifier())

	_, err := uc.Submit(dto.SubmitRequest{Slug: cerrado.Slug, Name: "Ana", Email: "a@t.com", Phone: "555"})
	assert.Equal(t, domain.ErrApplicationsClosed, err)
}

func TestSubmit_EmailRepetido(t *testing.T) {
	business := negocioAbierto()
	repo := newFakeCandidateRepo(
		candidato("c1", business.ID, "Ana", "ana@test.com", entity.StatusNew, time.Minute),
	)
	notifier := newFakeNotifier()
	uc := usecase.NewApplyUseCase(newFakeBusinessRepo(business), repo, notifier)

	// Mismo email con otras mayúsculas y espacios: sigue siendo duplicado.
	_, err := uc.Submit(dto.SubmitRequest{Slug: business.Slug, Name: "Ana Dos", Email: "  ANA@Test.com ", Phone: "555"})
	assert.Equal(t, domain.ErrDuplicateSubmission, err)

	select {
	case <-notifier.notified:
		t.Fatal("un duplicado no debe notificar")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmit_CreaCandidatoYNotifica(t *testing.T) {
	business := negocioAbierto()
	repo := newFakeCandidateRepo()
	notifier := newFakeNotifier()
	uc := usecase.NewApplyUseCase(newFakeBusinessRepo(business), repo, notifier)

	out, err := uc.Submit(dto.SubmitRequest{
		Slug:     business.Slug,
		Name:     "Ana Pérez",
		Email:    "Ana@Test.com",
		Phone:    "555-1234",
		Position: "Mesera",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana Pérez", out.Name)

	stored, err := repo.GetByBusinessAndID(business.ID, out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ana@test.com", stored.Email, "el email se guarda en minúsculas")
	assert.Equal(t, entity.StatusNew, stored.Status)

	select {
	case notified := <-notifier.notified:
		assert.Equal(t, out.ID, notified.ID, "la notificación lleva el candidato creado")
	case <-time.After(time.Second):
		t.Fatal("la notificación debe dispararse tras crear el candidato")
	}

	// El segundo postulante con otro email entra sin problema.
	_, err = uc.Submit(dto.SubmitRequest{Slug: business.Slug, Name: "Luis", Email: "luis@test.com", Phone: "555"})
	require.NoError(t, err)
	total, _ := repo.CountByBusiness(business.ID, repository.CandidateFilter{})
	assert.Equal(t, 2, total)
}
