package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contratafacil/contratafacil-api/internal/application/auth"
	"github.com/contratafacil/contratafacil-api/internal/application/dto"
	"github.com/contratafacil/contratafacil-api/internal/domain"
)

// Locals keys para el negocio autenticado en Fiber.
const (
	LocalBusinessID = "business_id"
	LocalBusiness   = "business"
)

// AuthMiddleware valida la cookie de sesión contra la base y carga el
// negocio dueño en c.Locals. Cookie ausente, token desconocido y sesión
// vencida responden 401; el cliente no distingue entre los dos últimos
// más allá del código.
func AuthMiddleware(authUC *auth.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "no autenticado"})
		}
		profile, err := authUC.Validate(token)
		if err != nil {
			switch err {
			case domain.ErrUnauthenticated:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión inválida"})
			case domain.ErrSessionExpired:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalBusinessID, profile.ID)
		c.Locals(LocalBusiness, profile)
		return c.Next()
	}
}

// GetBusinessID devuelve el ID del negocio autenticado (después del middleware).
func GetBusinessID(c *fiber.Ctx) string {
	v := c.Locals(LocalBusinessID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetBusiness devuelve el perfil del negocio autenticado (después del middleware).
func GetBusiness(c *fiber.Ctx) *dto.BusinessProfile {
	v := c.Locals(LocalBusiness)
	if v == nil {
		return nil
	}
	p, _ := v.(*dto.BusinessProfile)
	return p
}
