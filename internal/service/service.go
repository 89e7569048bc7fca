package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/repository"
	"github.com/seojacky/account-teacher/pkg/jwt"
	"github.com/seojacky/account-teacher/pkg/redis"
)

// Cache stores short-lived JSON values. Implemented by *redis.Client.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// TokenRevoker revokes access tokens before they expire. Implemented by *redis.Client.
type TokenRevoker interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service is the aggregate entry point of all services.
type Service struct {
	Achievement AchievementService
	Report      ReportService
	Auth        AuthService
	Directory   DirectoryService
	System      SystemService
}

// NewService builds the aggregate. rdb may be nil when Redis is unavailable;
// revocation and caching are then skipped.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var (
		cache   Cache
		revoker TokenRevoker
	)
	if rdb != nil {
		cache, revoker = rdb, rdb
	}
	return &Service{
		Achievement: NewAchievementService(&cfg.Achievements, repo, cache, logger),
		Report:      NewReportService(&cfg.Reports, &cfg.Achievements, repo, cache, logger),
		Auth:        NewAuthService(cfg, repo, jwtMgr, revoker, logger),
		Directory:   NewDirectoryService(repo, logger),
		System:      NewSystemService(&cfg.Reports, repo, logger),
	}
}
