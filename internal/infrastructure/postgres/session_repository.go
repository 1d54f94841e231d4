package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create persiste una nueva sesión.
func (r *SessionRepo) Create(s *entity.Session) error {
	query := `
		INSERT INTO sessions (id, business_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.BusinessID, s.Token, s.ExpiresAt, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByToken obtiene una sesión por su token; nil si no existe.
func (r *SessionRepo) GetByToken(token string) (*entity.Session, error) {
	query := `
		SELECT id, business_id, token, expires_at, created_at
		FROM sessions WHERE token = $1`
	var s entity.Session
	err := r.pool.QueryRow(context.Background(), query, token).Scan(
		&s.ID, &s.BusinessID, &s.Token, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// DeleteByToken elimina la sesión; idempotente.
func (r *SessionRepo) DeleteByToken(token string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
