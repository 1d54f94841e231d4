package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/domain"
	"github.com/contratafacil/contratafacil-api/internal/domain/entity"
	"github.com/contratafacil/contratafacil-api/internal/domain/repository"
	"github.com/contratafacil/contratafacil-api/pkg/slug"
)

// DefaultRequestedPosition puesto por defecto cuando el registro no indica uno.
const DefaultRequestedPosition = "Personal general"

// SessionConfig vigencia de las sesiones emitidas.
type SessionConfig struct {
	TTLDays int
}

// AuthUseCase registro, login y ciclo de vida de sesiones de admin.
// Las sesiones son tokens opacos persistidos con vencimiento absoluto:
// validar consulta la fila, revocar la borra.
type AuthUseCase struct {
	businesses repository.BusinessRepository
	sessions   repository.SessionRepository
	ttl        time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(businesses repository.BusinessRepository, sessions repository.SessionRepository, cfg SessionConfig) *AuthUseCase {
	days := cfg.TTLDays
	if days <= 0 {
		days = 7
	}
	return &AuthUseCase{
		businesses: businesses,
		sessions:   sessions,
		ttl:        time.Duration(days) * 24 * time.Hour,
	}
}

// Register crea el negocio (password con bcrypt, slug derivado del nombre)
// y emite la primera sesión. Devuelve ErrDuplicateBusiness si el email ya
// está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.BusinessSummary, *entity.Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.businesses.GetByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrDuplicateBusiness
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	position := in.RequestedPosition
	if position == "" {
		position = DefaultRequestedPosition
	}

	now := time.Now()
	business := &entity.Business{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Slug:              slug.New(in.Name),
		Email:             email,
		PasswordHash:      string(hash),
		Phone:             in.Phone,
		RequestedPosition: position,
		Accepting:         true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.businesses.Create(business); err != nil {
		return nil, nil, err
	}

	session, err := uc.Issue(business.ID)
	if err != nil {
		return nil, nil, err
	}
	return &dto.BusinessSummary{
		ID:    business.ID,
		Name:  business.Name,
		Slug:  business.Slug,
		Email: business.Email,
	}, session, nil
}

// Login verifica email/password y emite una sesión nueva. Email desconocido
// y password incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.BusinessProfile, *entity.Session, error) {
	business, err := uc.businesses.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, nil, err
	}
	if business == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := uc.Issue(business.ID)
	if err != nil {
		return nil, nil, err
	}
	return dto.ProfileFromBusiness(business), session, nil
}

// Issue emite una sesión nueva para el negocio: token fresco de 32 bytes
// aleatorios y vencimiento en now + TTL. Pueden coexistir varias sesiones
// válidas del mismo negocio.
func (uc *AuthUseCase) Issue(businessID string) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Token:      token,
		ExpiresAt:  now.Add(uc.ttl),
		CreatedAt:  now,
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate resuelve el token a su negocio dueño. Token desconocido →
// ErrUnauthenticated; token vencido → ErrSessionExpired (y se borra la fila
// best-effort: si el borrado falla la validación no cambia de resultado).
func (uc *AuthUseCase) Validate(token string) (*dto.BusinessProfile, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	session, err := uc.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.Expired(time.Now()) {
		_ = uc.sessions.DeleteByToken(token) // limpieza perezosa, fallo ignorado
		return nil, domain.ErrSessionExpired
	}

	business, err := uc.businesses.GetByID(session.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		// Sesión huérfana: el negocio ya no existe.
		return nil, domain.ErrUnauthenticated
	}
	return dto.ProfileFromBusiness(business), nil
}

// Revoke elimina la sesión del token; revocar un token inexistente no es error.
func (uc *AuthUseCase) Revoke(token string) error {
	if token == "" {
		return nil
	}
	return uc.sessions.DeleteByToken(token)
}

// newToken devuelve 32 bytes criptográficamente aleatorios en hex (64 chars).
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token de sesión: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
