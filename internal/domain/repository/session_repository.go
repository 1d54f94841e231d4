package repository

import "github.com/contratafacil/contratafacil-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para Session.
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByToken(token string) (*entity.Session, error)
	// DeleteByToken es idempotente: borrar un token inexistente no es error.
	DeleteByToken(token string) error
}
