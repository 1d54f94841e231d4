package repository

import "github.com/contratafacil/contratafacil-api/internal/domain/entity"

// CandidateFilter filtros opcionales para listar candidatos de un negocio.
type CandidateFilter struct {
	Status string // vacío = todos
	Search string // substring case-insensitive sobre nombre y email
	Limit  int    // 0 = sin límite
	Offset int
}

// CandidateRepository define el puerto de persistencia para Candidate.
// Toda operación está parametrizada por el negocio dueño; un candidato de
// otro negocio es indistinguible de uno inexistente.
type CandidateRepository interface {
	Create(candidate *entity.Candidate) error
	GetByBusinessAndID(businessID, id string) (*entity.Candidate, error)
	GetByBusinessAndEmail(businessID, email string) (*entity.Candidate, error)
	ListByBusiness(businessID string, f CandidateFilter) ([]*entity.Candidate, error)
	CountByBusiness(businessID string, f CandidateFilter) (int, error)
	UpdateStatusNotes(businessID, id, status, notes string) error
	Delete(businessID, id string) error
	DeleteAllByBusiness(businessID string) (int64, error)
}
