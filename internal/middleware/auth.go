package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

// TokenCookie is the cookie carrying the session token.
const TokenCookie = "token"

// AuthMiddleware verifies the bearer credential and stores the subject id and
// role on the request context. The cookie is checked first; an Authorization
// header is accepted as a fallback. All failures produce the same opaque 401:
// callers cannot distinguish expired from malformed from forged tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := ParseToken(tokenString, jwtSecret)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
	}
}

// ParseToken validates the signed token and returns its claims.
func ParseToken(tokenString, jwtSecret string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected HMAC algorithm: %v", method.Alg())
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if _, err := domain.ParseUserType(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("invalid role")
	}

	return claims, nil
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if tokenString, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(tokenString)
	}
	return ""
}

// CallerID returns the authenticated subject id from the request context.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// CallerRole returns the authenticated subject's role claim.
func CallerRole(c *gin.Context) (domain.UserType, bool) {
	val, exists := c.Get("role")
	if !exists {
		return "", false
	}
	role, ok := val.(domain.UserType)
	return role, ok
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	c.Abort()
}
