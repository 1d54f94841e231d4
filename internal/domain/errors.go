package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUnauthenticated     = errors.New("no autenticado")
	ErrSessionExpired      = errors.New("sesión expirada")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateBusiness   = errors.New("ya existe un negocio con ese email")
	ErrDuplicateSubmission = errors.New("ya has aplicado anteriormente con este email")
	ErrApplicationsClosed  = errors.New("este negocio no está recibiendo aplicaciones")
)
