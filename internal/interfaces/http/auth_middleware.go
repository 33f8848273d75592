package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUsername  = "username"
	LocalCompanyID = "company_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae usuario, empresa seleccionada y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, code, msg := parseBearer(c, jwtSecret)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth carga los claims si hay un token válido y sigue sin error si no lo hay.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, _, _ := parseBearer(c, jwtSecret); claims != nil {
			setClaims(c, claims)
		}
		return c.Next()
	}
}

// RequireRole permite el acceso solo si el rol del token está entre allowed.
// Debe ir después de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

func parseBearer(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, string, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "MISSING_TOKEN", "Authorization header requerido"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "INVALID_TOKEN", "formato: Bearer <token>"
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, "MISSING_TOKEN", "token vacío"
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, "INVALID_TOKEN", "token inválido o expirado"
	}
	return claims, "", ""
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalUsername, claims.Username)
	c.Locals(LocalCompanyID, claims.CompanyID)
	c.Locals(LocalRole, claims.Role)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername devuelve el nombre del operador autenticado.
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetCompanyID devuelve la empresa seleccionada en el token.
func GetCompanyID(c *fiber.Ctx) string { return localString(c, LocalCompanyID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetSubject reconstruye el sujeto del token, para reemitirlo con otra empresa.
func GetSubject(c *fiber.Ctx) jwt.Subject {
	return jwt.Subject{
		UserID:    GetUserID(c),
		Username:  GetUsername(c),
		CompanyID: GetCompanyID(c),
		Role:      GetRole(c),
	}
}
