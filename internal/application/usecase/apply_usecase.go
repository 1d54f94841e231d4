package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

// Notifier puerto de notificaciones salientes. La implementación decide
// qué canales del negocio están activos y despacha a cada uno; los fallos
// se registran y nunca se propagan.
type Notifier interface {
	NotifyNewCandidate(business *entity.Business, candidate *entity.Candidate)
}

// ApplyUseCase puerta pública de aplicaciones: la única vía de escritura
// sin credenciales. El gating es por negocio (flag accepting) más la
// unicidad (negocio, email).
type ApplyUseCase struct {
	businesses repository.BusinessRepository
	candidates repository.CandidateRepository
	notifier   Notifier
}

// NewApplyUseCase construye el caso de uso.
func NewApplyUseCase(businesses repository.BusinessRepository, candidates repository.CandidateRepository, notifier Notifier) *ApplyUseCase {
	return &ApplyUseCase{businesses: businesses, candidates: candidates, notifier: notifier}
}

// Submit procesa una aplicación pública:
//  1. resuelve el negocio por slug (ErrNotFound si no existe),
//  2. verifica el flag accepting (ErrApplicationsClosed),
//  3. rechaza emails repetidos para el mismo negocio (ErrDuplicateSubmission,
//     comparación en minúsculas),
//  4. crea el candidato con estado "new" y responde solo id y nombre,
//  5. dispara las notificaciones en segundo plano: la respuesta HTTP no
//     espera ni depende de la entrega.
func (uc *ApplyUseCase) Submit(in dto.SubmitRequest) (*dto.SubmitResponse, error) {
	business, err := uc.businesses.GetBySlug(in.Slug)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if !business.Accepting {
		return nil, domain.ErrApplicationsClosed
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.candidates.GetByBusinessAndEmail(business.ID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSubmission
	}

	candidate := &entity.Candidate{
		ID:               uuid.New().String(),
		BusinessID:       business.ID,
		Name:             in.Name,
		Email:            email,
		Phone:            in.Phone,
		Address:          in.Address,
		BirthDate:        in.BirthDate,
		Position:         in.Position,
		Experience:       in.Experience,
		Education:        in.Education,
		Skills:           in.Skills,
		ExperienceDetail: in.ExperienceDetail,
		Availability:     in.Availability,
		CVURL:            in.CVURL,
		PhotoURL:         in.PhotoURL,
		Status:           entity.StatusNew,
		CreatedAt:        time.Now(),
	}
	if err := uc.candidates.Create(candidate); err != nil {
		return nil, err
	}

	go uc.notifier.NotifyNewCandidate(business, candidate)

	return &dto.SubmitResponse{ID: candidate.ID, Name: candidate.Name}, nil
}
