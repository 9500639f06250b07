package middleware

import (
	"receipt-ledger/domain"
	"receipt-ledger/internal/api/presenters"
	"receipt-ledger/internal/utils/logger"
	"receipt-ledger/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

const localUserID = "local"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		// ContextLogger puts a request scoped logger into the user context.
		ContextLogger(log zerolog.Logger) fiber.Handler
	}

	middleware struct {
		authDisabled bool
	}
)

// NewMiddleware builds the shared middlewares. With authDisabled every request
// runs as a single local user.
func NewMiddleware(authDisabled bool) Middleware {
	return &middleware{authDisabled: authDisabled}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		ExposeHeaders: "Content-Disposition",
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New()
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.authDisabled {
			c.Locals("user_id", localUserID)
			c.Locals("role", domain.RoleUser)
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, role, err := jwtService.GetUserIDByToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

func (m *middleware) ContextLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqLog := log.With().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(logger.WithContext(c.UserContext(), reqLog))
		return c.Next()
	}
}
