package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter(t *testing.T, auth *Auth, roles ...string) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlerRan := false
	r := gin.New()
	api := r.Group("/api")
	api.Use(auth.RequireAuth())
	api.POST("/guarded", auth.RequireRole(roles...), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})
	return r, &handlerRan
}

func doGuarded(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleBlocksHandler(t *testing.T) {
	auth := NewAuth("test-secret")
	token, err := auth.GenerateToken(1, "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r, handlerRan := newGuardedRouter(t, auth, "admin", "manager")
	w := doGuarded(r, token)

	if *handlerRan {
		t.Fatal("guarded handler ran for an unprivileged role")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	auth := NewAuth("test-secret")
	token, err := auth.GenerateToken(2, "manager")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r, handlerRan := newGuardedRouter(t, auth, "admin", "manager")
	w := doGuarded(r, token)

	if !*handlerRan {
		t.Fatal("guarded handler did not run for a listed role")
	}
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestRequireRoleWithoutToken(t *testing.T) {
	auth := NewAuth("test-secret")

	r, handlerRan := newGuardedRouter(t, auth, "admin")
	w := doGuarded(r, "")

	if *handlerRan {
		t.Fatal("guarded handler ran without a token")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
