package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims *service.Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims() *service.Claims {
	return &service.Claims{
		UserID: uuid.New(),
		Role:   domain.UserTypeEmployer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	want := validClaims()
	signed := signToken(t, want, testSecret)

	got, err := ParseToken(signed, testSecret)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if got.UserID != want.UserID {
		t.Errorf("user id = %s, want %s", got.UserID, want.UserID)
	}
	if got.Role != want.Role {
		t.Errorf("role = %s, want %s", got.Role, want.Role)
	}
}

func TestParseTokenRejections(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", signToken(t, validClaims(), "other-secret")},
		{"expired", signToken(t, &service.Claims{
			UserID: uuid.New(),
			Role:   domain.UserTypeJobSeeker,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, testSecret)},
		{"nil user id", signToken(t, &service.Claims{
			Role: domain.UserTypeJobSeeker,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)},
		{"unknown role", signToken(t, &service.Claims{
			UserID: uuid.New(),
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, testSecret)},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, testSecret); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		id, _ := CallerID(c)
		role, _ := CallerRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": string(role)})
	})
	return r
}

func TestAuthMiddlewareCookie(t *testing.T) {
	claims := validClaims()
	signed := signToken(t, claims, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: signed})
	w := httptest.NewRecorder()
	newAuthRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["id"] != claims.UserID.String() {
		t.Errorf("id = %s, want %s", body["id"], claims.UserID)
	}
	if body["role"] != "employer" {
		t.Errorf("role = %s, want employer", body["role"])
	}
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	signed := signToken(t, validClaims(), testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	newAuthRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

// Missing, malformed, and forged credentials all yield the identical 401 body.
func TestAuthMiddlewareOpaque401(t *testing.T) {
	router := newAuthRouter()

	requests := []func(*http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"}) },
		func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, validClaims(), "forged-secret"))
		},
	}

	for i, setup := range requests {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		setup(req)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("case %d: status = %d, want 401", i, w.Code)
		}
		if w.Body.String() != `{"error":"Not authenticated"}` {
			t.Errorf("case %d: body = %s", i, w.Body.String())
		}
	}
}
