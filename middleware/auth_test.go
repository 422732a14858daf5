package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitgarden/backend"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthStaffMiddleware())
	r.GET("/session", func(c *gin.Context) {
		provider := backend.StaffTokenProvider{Fallback: "service-token"}
		token, _ := provider.Token(c.Request.Context())
		*seen = token
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthAcceptsMintedTokenAndForwardsIt(t *testing.T) {
	token, err := utils.GenerateToken("staff-1", "ana@fitgarden.com.br", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var seen string
	r := newAuthRouter(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if seen != token {
		t.Errorf("forwarded token = %q, want the caller's own token", seen)
	}
}

func TestAuthRejectsMissingOrInvalidTokens(t *testing.T) {
	expired, err := utils.GenerateToken("staff-1", "ana@fitgarden.com.br", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var seen string
	r := newAuthRouter(&seen)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, w.Code)
		}
	}
}
