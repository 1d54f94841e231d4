package entity

import "time"

// Session es la credencial portadora de un negocio autenticado: un token
// opaco (32 bytes aleatorios en hex) con vencimiento absoluto. No hay
// renovación deslizante; pasada la fecha el token deja de ser válido.
type Session struct {
	ID         string
	BusinessID string
	Token      string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired informa si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
