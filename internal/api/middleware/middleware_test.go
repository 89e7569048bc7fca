package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-tests",
		AccessTokenTTL: 15 * time.Minute,
	})
}

func int64Ptr(v int64) *int64 { return &v }

func TestJWTAuth(t *testing.T) {
	mgr := testManager()
	token, err := mgr.GenerateAccessToken(5, "vykladach", int64Ptr(1), int64Ptr(3))
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotDept *int64

			r := gin.New()
			r.GET("/p", JWTAuth(mgr, nil), func(c *gin.Context) {
				gotID = c.GetInt64(CtxUserID)
				gotDept, _ = c.MustGet(CtxDepartmentID).(*int64)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/p", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusOK && (gotID != 5 || gotDept == nil || *gotDept != 3) {
				t.Errorf("principal not injected: id=%d dept=%v", gotID, gotDept)
			}
		})
	}
}

func TestRoleAuth(t *testing.T) {
	tests := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusOK},
		{"dekanat", http.StatusOK},
		{"vykladach", http.StatusForbidden},
		{"", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.role, func(t *testing.T) {
			r := gin.New()
			r.GET("/p", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(CtxRole, tt.role)
				}
			}, RoleAuth("admin", "dekanat"), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/p", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestBodyLimit_RejectsDeclaredOversize(t *testing.T) {
	r := gin.New()
	r.POST("/p", BodyLimit(8), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/p", strings.NewReader("0123456789")))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/p", RequestID(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", requestIDMaxLen+1))
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("oversized id must be replaced by a uuid, got %q", got)
	}
}

func TestRateLimit_WithoutRedisPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/p", RateLimit(nil, 1, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/p", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	tests := []struct {
		name         string
		d            time.Duration
		wantDeadline bool
	}{
		{"enabled", 2 * time.Second, true},
		{"disabled", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var (
				hasDeadline bool
				deadline    time.Time
			)
			r := gin.New()
			r.GET("/p", Timeout(tt.d), func(c *gin.Context) {
				deadline, hasDeadline = c.Request.Context().Deadline()
				c.Status(http.StatusOK)
			})

			start := time.Now()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/p", nil))

			if hasDeadline != tt.wantDeadline {
				t.Fatalf("deadline set = %v, want %v", hasDeadline, tt.wantDeadline)
			}
			if hasDeadline && deadline.After(start.Add(tt.d+time.Second)) {
				t.Errorf("deadline %v too far from start %v", deadline, start)
			}
		})
	}
}

func TestTimeout_CancelsSlowWork(t *testing.T) {
	var ctxErr error
	r := gin.New()
	r.GET("/p", Timeout(10*time.Millisecond), func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			ctxErr = c.Request.Context().Err()
		case <-time.After(time.Second):
		}
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/p", nil))

	if !errors.Is(ctxErr, context.DeadlineExceeded) {
		t.Errorf("want DeadlineExceeded, got %v", ctxErr)
	}
}
