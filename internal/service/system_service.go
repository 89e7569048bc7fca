package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/repository"
	"github.com/seojacky/account-teacher/pkg/response"
)

// SystemService exposes the audit trail to administrators.
type SystemService interface {
	AuditLogs(ctx context.Context, req *dto.PaginationRequest) (*response.PageData, error)
}

type systemService struct {
	cfg    *config.ReportsConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSystemService creates a SystemService.
func NewSystemService(cfg *config.ReportsConfig, repo *repository.Repository, logger *zap.Logger) SystemService {
	return &systemService{cfg: cfg, repo: repo, logger: logger}
}

func (s *systemService) AuditLogs(ctx context.Context, req *dto.PaginationRequest) (*response.PageData, error) {
	pageSize := req.GetPageSize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	entries, total, err := s.repo.AuditLog.List(ctx, req.GetOffset(pageSize), pageSize)
	if err != nil {
		s.logger.Error("failed to list audit log", zap.Error(err))
		return nil, storeError(err)
	}

	list := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		item := dto.AuditLogResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Action:      e.Action,
			Description: e.Description,
			IPAddress:   e.IPAddress,
			UserAgent:   e.UserAgent,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.User != nil {
			item.UserName = e.User.FullName
		}
		list = append(list, item)
	}
	return response.NewPageData(list, total, req.GetPage(), pageSize), nil
}
