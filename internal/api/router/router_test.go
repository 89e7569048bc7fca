package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/api/handler"
	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/jwt"
	"github.com/seojacky/account-teacher/pkg/response"
)

// recordingReportService captures the principal each report call runs for.
type recordingReportService struct {
	called      bool
	principal   access.Principal
	hasDeadline bool
}

func (r *recordingReportService) Statistics(_ context.Context, _ access.Principal) (*dto.StatisticsResponse, error) {
	return &dto.StatisticsResponse{}, nil
}

func (r *recordingReportService) ListUsers(_ context.Context, _ access.Principal, _ *dto.UserListRequest) (*response.PageData, error) {
	return &response.PageData{}, nil
}

func (r *recordingReportService) ExportAll(ctx context.Context, p access.Principal, _ *dto.ReportExportRequest) (*service.File, error) {
	r.called = true
	r.principal = p
	_, r.hasDeadline = ctx.Deadline()
	return &service.File{
		Filename:    "report_achievements_2025-03-14_09-30-00.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte("\"ПІБ\"\n"),
	}, nil
}

func int64Ptr(v int64) *int64 { return &v }

func setupRouter(t *testing.T) (http.Handler, *jwt.Manager, *recordingReportService) {
	t.Helper()
	cfg := &config.Config{
		Server:       config.ServerConfig{RequestTimeout: 5 * time.Second},
		Auth:         config.AuthConfig{JWTSecret: "router-test-secret-key", AccessTokenTTL: 15 * time.Minute},
		Achievements: config.AchievementsConfig{ImportMaxBytes: 1 << 20},
		RateLimit:    config.RateLimitConfig{Requests: 100, Window: time.Minute},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	reports := &recordingReportService{}
	h := handler.NewHandler(&service.Service{Report: reports}, nil)
	return Setup(cfg, h, jwtMgr, nil, zap.NewNop()), jwtMgr, reports
}

func bearer(t *testing.T, mgr *jwt.Manager, id int64, role access.Role) string {
	t.Helper()
	token, err := mgr.GenerateAccessToken(id, string(role), int64Ptr(1), int64Ptr(3))
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return "Bearer " + token
}

func TestReportExport_OpenToEveryRole(t *testing.T) {
	for _, role := range []access.Role{access.RoleAdmin, access.RoleDekanat, access.RoleZaviduvach, access.RoleVykladach} {
		role := role
		t.Run(string(role), func(t *testing.T) {
			r, mgr, reports := setupRouter(t)

			req := httptest.NewRequest("GET", "/api/v1/reports/export", nil)
			req.Header.Set("Authorization", bearer(t, mgr, 5, role))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if !reports.called || reports.principal.ID != 5 || reports.principal.Role != role {
				t.Errorf("export ran for %+v (called=%v)", reports.principal, reports.called)
			}
			if !reports.hasDeadline {
				t.Error("request context carries no deadline")
			}
		})
	}
}

func TestReportExport_RequiresToken(t *testing.T) {
	r, _, reports := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/reports/export", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if reports.called {
		t.Error("service must not run without a token")
	}
}

func TestSystemLogs_AdminOnly(t *testing.T) {
	r, mgr, _ := setupRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/system/logs", nil)
	req.Header.Set("Authorization", bearer(t, mgr, 5, access.RoleVykladach))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
