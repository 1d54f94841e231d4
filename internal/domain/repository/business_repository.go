package repository

import "github.com/contratafacil/contratafacil-api/internal/domain/entity"

// BusinessRepository define el puerto de persistencia para Business (DIP).
// La implementación vive en infrastructure.
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	GetByEmail(email string) (*entity.Business, error)
	GetBySlug(slug string) (*entity.Business, error)
	// UpdateProfile escribe la lista fija de campos de perfil y notificación
	// (nunca email, slug ni password) y toca updated_at.
	UpdateProfile(business *entity.Business) error
}
