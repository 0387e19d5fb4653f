package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"golang.org/x/crypto/bcrypt"

	"scl90-api/internal/service"
)

// GateMiddleware valida y consume el token de entrega. El token se quema al
// admitir la petición, antes de correr el motor: una entrega malformada
// también gasta su token.
func GateMiddleware(logger *zap.Logger, tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "gate not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		err := tokens.Consume(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrTokenUsed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token already used"})
			c.Abort()
		case errors.Is(err, service.ErrTokenExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			c.Abort()
		case errors.Is(err, service.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
		default:
			logger.Error("gate check failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify token"})
			c.Abort()
		}
	}
}

// AdminAuthMiddleware compara X-Admin-Key contra el hash bcrypt configurado.
// Sin hash configurado, la ruta queda deshabilitada.
func AdminAuthMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(keyHash) == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
			c.Abort()
			return
		}
		key := strings.TrimSpace(c.GetHeader("X-Admin-Key"))
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin key"})
			c.Abort()
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
