package dto

import "time"

// SubmitRequest entrada del formulario público de aplicación. El slug
// identifica al negocio; nombre, email y teléfono son obligatorios.
type SubmitRequest struct {
	Slug             string `json:"slug" validate:"required"`
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,max=30"`
	Address          string `json:"address"`
	BirthDate        string `json:"birth_date"`
	Position         string `json:"position"`
	Experience       string `json:"experience"`
	Education        string `json:"education"`
	Skills           string `json:"skills"`
	ExperienceDetail string `json:"experience_detail"`
	Availability     string `json:"availability"`
	CVURL            string `json:"cv_url"`
	PhotoURL         string `json:"photo_url"`
}

// SubmitResponse eco mínimo tras aplicar: solo id y nombre del candidato.
type SubmitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateCandidateRequest patch disperso de un candidato; solo estado y
// notas son mutables por esta vía.
type UpdateCandidateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// CandidateResponse salida completa de un candidato para el panel admin.
type CandidateResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	Position         string    `json:"position,omitempty"`
	Experience       string    `json:"experience,omitempty"`
	Education        string    `json:"education,omitempty"`
	Skills           string    `json:"skills,omitempty"`
	ExperienceDetail string    `json:"experience_detail,omitempty"`
	Availability     string    `json:"availability,omitempty"`
	CVURL            string    `json:"cv_url,omitempty"`
	PhotoURL         string    `json:"photo_url,omitempty"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// CandidateListResponse listado paginado de candidatos.
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Pagination Pagination          `json:"pagination"`
}

// DeleteAllResponse resultado del borrado masivo.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}
