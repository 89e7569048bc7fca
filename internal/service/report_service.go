package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/api/metrics"
	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/model"
	"github.com/seojacky/account-teacher/internal/repository"
	"github.com/seojacky/account-teacher/internal/transcoder"
	"github.com/seojacky/account-teacher/pkg/redis"
	"github.com/seojacky/account-teacher/pkg/response"
)

// Report formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ReportService aggregates achievement data across users.
//
// Multi-user listings and exports only include users inside access.ScopeOf(principal),
// narrowed further by the caller's faculty/department filters.
type ReportService interface {
	Statistics(ctx context.Context, p access.Principal) (*dto.StatisticsResponse, error)
	ListUsers(ctx context.Context, p access.Principal, req *dto.UserListRequest) (*response.PageData, error)
	ExportAll(ctx context.Context, p access.Principal, req *dto.ReportExportRequest) (*File, error)
}

type reportService struct {
	cfg    *config.ReportsConfig
	achCfg *config.AchievementsConfig
	repo   *repository.Repository
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a ReportService. cache may be nil.
func NewReportService(
	cfg *config.ReportsConfig,
	achCfg *config.AchievementsConfig,
	repo *repository.Repository,
	cache Cache,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		cfg:    cfg,
		achCfg: achCfg,
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// ────────────────────── Statistics ──────────────────────

func (s *reportService) Statistics(ctx context.Context, p access.Principal) (*dto.StatisticsResponse, error) {
	scope := access.Scope{}
	if s.cfg.ScopeStatistics {
		scope = access.ScopeOf(p)
	}

	key := statisticsCacheKey(scope)
	if s.cache != nil {
		var cached dto.StatisticsResponse
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			metrics.StatisticsCacheTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("statistics cache read failed", zap.Error(err))
		}
		metrics.StatisticsCacheTotal.WithLabelValues("miss").Inc()
	}

	stats, err := s.computeStatistics(ctx, scope)
	if err != nil {
		s.logger.Error("failed to compute statistics", zap.Error(err))
		return nil, storeError(err)
	}

	if s.cache != nil && s.cfg.StatisticsCacheTTL > 0 {
		if err := s.cache.SetJSON(ctx, key, stats, s.cfg.StatisticsCacheTTL); err != nil {
			s.logger.Warn("statistics cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *reportService) computeStatistics(ctx context.Context, scope access.Scope) (*dto.StatisticsResponse, error) {
	total, err := s.repo.Report.CountActiveUsers(ctx, scope)
	if err != nil {
		return nil, err
	}
	withAny, err := s.repo.Report.CountUsersWithAchievements(ctx, scope)
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.Report.CountByRole(ctx, scope)
	if err != nil {
		return nil, err
	}
	faculties, err := s.repo.Report.CountByFaculty(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := &dto.StatisticsResponse{
		TotalActiveUsers:        total,
		UsersWithAnyAchievement: withAny,
		ByRole:                  make([]dto.RoleStat, 0, len(roles)),
		ByFaculty:               make([]dto.FacultyStat, 0, len(faculties)),
	}
	for _, r := range roles {
		out.ByRole = append(out.ByRole, dto.RoleStat{Role: r.RoleName, RoleDisplay: r.RoleDisplay, Count: r.Count})
	}
	for _, f := range faculties {
		out.ByFaculty = append(out.ByFaculty, dto.FacultyStat{FacultyID: f.FacultyID, FacultyName: f.FacultyName, Count: f.Count})
	}
	return out, nil
}

// statisticsKeyPrefix prefixes every cached statistics entry.
const statisticsKeyPrefix = "stats:"

func statisticsCacheKey(scope access.Scope) string {
	key := statisticsKeyPrefix
	switch {
	case scope.None:
		return key + "none"
	case scope.All():
		return key + "all"
	}
	if scope.UserID != nil {
		key += fmt.Sprintf("u%d", *scope.UserID)
	}
	if scope.FacultyID != nil {
		key += fmt.Sprintf("f%d", *scope.FacultyID)
	}
	if scope.DepartmentID != nil {
		key += fmt.Sprintf("d%d", *scope.DepartmentID)
	}
	return key
}

// ────────────────────── ListUsers ──────────────────────

func (s *reportService) ListUsers(ctx context.Context, p access.Principal, req *dto.UserListRequest) (*response.PageData, error) {
	scope := access.ScopeOf(p).Narrow(req.FacultyID, req.DepartmentID)
	pageSize := req.GetPageSize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	rows, total, err := s.repo.User.ListSummaries(ctx, scope, req.GetOffset(pageSize), pageSize)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, storeError(err)
	}

	list := make([]dto.UserSummaryResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.UserSummaryResponse{
			ID:             r.ID,
			EmployeeID:     r.EmployeeID,
			FullName:       r.FullName,
			Position:       deref(r.Position),
			Role:           r.RoleName,
			RoleDisplay:    r.RoleDisplay,
			FacultyName:    deref(r.FacultyName),
			DepartmentName: deref(r.DepartmentName),
		}
		if r.LastUpdated != nil {
			ts := r.LastUpdated.Format(time.RFC3339)
			item.LastUpdated = &ts
		}
		list = append(list, item)
	}

	return response.NewPageData(list, total, req.GetPage(), pageSize), nil
}

// ────────────────────── ExportAll ──────────────────────

func (s *reportService) ExportAll(ctx context.Context, p access.Principal, req *dto.ReportExportRequest) (*File, error) {
	format := req.Format
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, ErrInvalidFormat
	}
	enc, err := transcoder.ParseEncoding(req.Encoding, transcoder.EncodingUTF8)
	if err != nil {
		return nil, err
	}

	rows, err := s.collectRows(ctx, access.ScopeOf(p).Narrow(req.FacultyID, req.DepartmentID))
	if err != nil {
		s.logger.Error("failed to collect report rows", zap.Int64("actor_id", p.ID), zap.Error(err))
		return nil, storeError(err)
	}

	now := s.now()
	file := &File{}
	switch format {
	case FormatXLSX:
		body, err := buildReportXLSX(rows)
		if err != nil {
			s.logger.Error("failed to build xlsx report", zap.Error(err))
			return nil, ErrGenerateReport
		}
		file.Body = body
		file.Filename = transcoder.ReportFilename(now, FormatXLSX)
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		file.Body = transcoder.EncodeReport(rows, enc)
		file.Filename = transcoder.ReportFilename(now, FormatCSV)
		file.ContentType = enc.ContentType()
	}

	metrics.ReportExportsTotal.WithLabelValues(format).Inc()
	s.logger.Info("report exported",
		zap.Int64("actor_id", p.ID),
		zap.String("format", format),
		zap.Int("rows", len(rows)),
	)
	return file, nil
}

// collectRows joins visible users with their records, keeping the user order.
func (s *reportService) collectRows(ctx context.Context, scope access.Scope) ([]transcoder.ReportRow, error) {
	users, err := s.repo.User.ListActive(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	records, err := s.repo.Achievement.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byUser := make(map[int64]*model.Achievement, len(records))
	for i := range records {
		byUser[records[i].UserID] = &records[i]
	}

	rows := make([]transcoder.ReportRow, 0, len(users))
	for i := range users {
		u := &users[i]
		row := transcoder.ReportRow{
			EmployeeID: u.EmployeeID,
			FullName:   u.FullName,
			Position:   u.PositionOrEmpty(),
			Faculty:    u.FacultyShortName(),
			Department: u.DepartmentShortName(),
		}
		if rec, ok := byUser[u.ID]; ok {
			updated := rec.LastUpdated
			row.LastUpdated = &updated
			row.Slots = rec.Slots()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
