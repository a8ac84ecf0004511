package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsManager(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   bool
	}{
		{"empty header", "", false},
		{"owner", "TrueTickets-Cacell-Owner", true},
		{"manager among others", "SomeGroup, TrueTickets-Cacell-Manager", true},
		{"spaces trimmed", "  TrueTickets-Cacell-ApplicationAdmin  ", true},
		{"unrelated groups", "Users,Admins", false},
		{"case sensitive", "truetickets-cacell-owner", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isManager(tc.header); got != tc.want {
				t.Fatalf("isManager(%q) = %v, want %v", tc.header, got, tc.want)
			}
		})
	}
}

func TestRequireManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/revenue", requireManager(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("no header is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/revenue", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("manager group passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/revenue", nil)
		req.Header.Set("X-User-Groups", "TrueTickets-Cacell-Manager")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCorsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(corsMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.OPTIONS("/ping", func(c *gin.Context) {})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Fatalf("expected preflight headers, got %v", w.Header())
		}
	})

	t.Run("normal request gets origin header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("expected wildcard origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(requestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})

	t.Run("passes through client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-Id", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("X-Request-Id") != "req-42" {
			t.Fatalf("expected req-42, got %q", w.Header().Get("X-Request-Id"))
		}
	})

	t.Run("generates one when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("X-Request-Id") == "" {
			t.Fatalf("expected generated request id")
		}
	})
}
