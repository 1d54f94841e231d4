package entity

import "time"

// Estados válidos para Candidate. Las transiciones son libres: el panel
// admin puede mover un candidato a cualquier estado en cualquier momento.
const (
	StatusNew       = "new"
	StatusReviewed  = "reviewed"
	StatusContacted = "contacted"
	StatusHired     = "hired"
	StatusRejected  = "rejected"
)

// ValidStatus informa si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusContacted, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Candidate representa una aplicación enviada desde el formulario público.
// Regla de unicidad: (BusinessID, Email en minúsculas) — una persona no
// puede aplicar dos veces al mismo negocio.
type Candidate struct {
	ID               string
	BusinessID       string
	Name             string
	Email            string // siempre en minúsculas
	Phone            string
	Address          string
	BirthDate        string
	Position         string
	Experience       string
	Education        string
	Skills           string
	ExperienceDetail string
	Availability     string
	CVURL            string
	PhotoURL         string
	Status           string // ver constantes Status*
	Notes            string
	CreatedAt        time.Time
}
