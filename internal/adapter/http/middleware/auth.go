package middleware

import (
	"net/http"
	"repairhub/internal/domain/entities"
	"repairhub/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const actorKey = "actor"

// Claims are issued by the identity provider; this service only verifies
// them. The subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingAuthorization = pkg.NewDomainErrorSimple("MISSING_AUTHORIZATION", "Authorization header is required", http.StatusUnauthorized)
	errInvalidAuthorization = pkg.NewDomainErrorSimple("INVALID_AUTHORIZATION", "Invalid authorization header format", http.StatusUnauthorized)
	errInvalidToken         = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden            = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// Authentication verifies the HS256 bearer token and stores the caller as an
// entities.Actor on the gin context.
func Authentication(jwtSecret string, logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "auth").Logger()
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, errMissingAuthorization)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, errInvalidAuthorization)
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(strings.TrimSpace(parts[1]), claims, func(*jwt.Token) (any, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("[http][auth] invalid token")
			abort(c, errInvalidToken)
			return
		}

		role, err := entities.ParseRole(claims.Role)
		if err != nil || strings.TrimSpace(claims.Subject) == "" {
			log.Warn().Str("role", claims.Role).Msg("[http][auth] token without subject or known role")
			abort(c, errInvalidToken)
			return
		}

		c.Set(actorKey, entities.Actor{ID: claims.Subject, Role: role})
		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abort(c, errForbidden)
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		abort(c, errForbidden)
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor is used by tests and internal callers that authenticate by other
// means.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

func abort(c *gin.Context, e *pkg.AppError) {
	c.AbortWithStatusJSON(e.HTTPStatus, e.ToHTTPError())
}
