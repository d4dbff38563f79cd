package middleware

import (
	"server/config"
	"server/internal/database"
	"server/internal/events"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Middleware struct {
	db       database.DB
	eventBus *events.EventBus
	config   config.Config
	userRepo repositories.UserRepository
	log      logger.Logger
}

func New(
	db database.DB,
	eventBus *events.EventBus,
	config config.Config,
	userRepo repositories.UserRepository,
) Middleware {
	return Middleware{
		db:       db,
		eventBus: eventBus,
		config:   config,
		userRepo: userRepo,
		log:      logger.New("middleware"),
	}
}

// RequireAuth verifies the hosted-auth bearer token and loads (or creates)
// the matching user into locals. Session management itself is the auth
// provider's problem; this only checks the signature and expiry.
func (m Middleware) RequireAuth() fiber.Handler {
	log := m.log.Function("RequireAuth")

	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "missing access token"})
		}

		claims, err := m.verifyToken(token)
		if err != nil {
			log.Er("failed to verify access token", err)
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "invalid access token"})
		}

		user, err := m.userRepo.GetOrCreate(c.Context(), claims)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"message": "failed to resolve user"})
		}

		c.Locals("user", *user)
		c.Locals("userID", user.ID)
		return c.Next()
	}
}

// RequireAdmin gates the export endpoints behind the shared admin key,
// compared against its bcrypt hash from config.
func (m Middleware) RequireAdmin() fiber.Handler {
	log := m.log.Function("RequireAdmin")

	return func(c *fiber.Ctx) error {
		if m.config.AdminKeyHash == "" {
			log.ErMsg("admin key is not configured")
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "admin access is not configured"})
		}

		key := c.Get("X-Admin-Key")
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "missing admin key"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.config.AdminKeyHash), []byte(key)); err != nil {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "invalid admin key"})
		}

		return c.Next()
	}
}

func (m Middleware) verifyToken(token string) (UserClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.config.AuthJwtSecret), nil
	})
	if err != nil {
		return UserClaims{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return UserClaims{}, jwt.ErrTokenInvalidClaims
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return UserClaims{}, jwt.ErrTokenRequiredClaimMissing
	}

	email, _ := claims["email"].(string)
	return UserClaims{Subject: subject, Email: email}, nil
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Websocket upgrades can't set headers from the browser.
	return c.Query("access_token")
}
