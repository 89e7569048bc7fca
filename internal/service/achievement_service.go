package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/api/metrics"
	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/model"
	"github.com/seojacky/account-teacher/internal/repository"
	"github.com/seojacky/account-teacher/internal/transcoder"
	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// File is a generated download.
type File struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportOptions selects the variant of a per-user CSV export.
type ExportOptions struct {
	Encoding     string // empty selects achievements.default_encoding
	IncludeEmpty bool
}

// AchievementService reads and replaces the achievement record of one user.
//
// Every operation first denies what the access policy can refuse without the target
// (Forbidden), then resolves the target user (missing or inactive: NotFound) and asks
// the policy again with its placement. Writes replace all slots of the
// record and append an audit entry in one transaction.
type AchievementService interface {
	Get(ctx context.Context, p access.Principal, targetUserID int64) (*dto.AchievementResponse, error)
	// Upsert replaces the whole record; slots absent from the map become empty.
	Upsert(ctx context.Context, p access.Principal, targetUserID int64, slots map[int]string) (*dto.AchievementResponse, error)
	ExportCSV(ctx context.Context, p access.Principal, targetUserID int64, opts ExportOptions) (*File, error)
	ImportCSV(ctx context.Context, p access.Principal, targetUserID int64, data []byte) (*dto.ImportResponse, error)
}

type achievementService struct {
	cfg    *config.AchievementsConfig
	repo   *repository.Repository
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewAchievementService creates an AchievementService. cache may be nil; when set,
// cached statistics are dropped after every stored write.
func NewAchievementService(cfg *config.AchievementsConfig, repo *repository.Repository, cache Cache, logger *zap.Logger) AchievementService {
	return &achievementService{
		cfg:    cfg,
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ────────────────────── Get ──────────────────────

func (s *achievementService) Get(ctx context.Context, p access.Principal, targetUserID int64) (*dto.AchievementResponse, error) {
	user, err := s.authorizedTarget(ctx, p, targetUserID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(p, user.ID, user.OrgScope()) {
		return nil, ErrForbidden
	}

	record, err := s.loadRecord(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toAchievementResponse(user, record), nil
}

// ────────────────────── Upsert ──────────────────────

func (s *achievementService) Upsert(ctx context.Context, p access.Principal, targetUserID int64, slots map[int]string) (*dto.AchievementResponse, error) {
	user, err := s.authorizedTarget(ctx, p, targetUserID)
	if err != nil {
		metrics.UpsertsTotal.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}
	resp, err := s.write(ctx, p, user, slots, model.ActionUpdateAchievements,
		fmt.Sprintf("Оновлено досягнення користувача ID %d", user.ID))
	metrics.UpsertsTotal.WithLabelValues(resultLabel(err)).Inc()
	return resp, err
}

// write checks CanWrite, normalises slots and stores the record with its audit entry.
func (s *achievementService) write(
	ctx context.Context,
	p access.Principal,
	user *model.User,
	slots map[int]string,
	action, description string,
) (*dto.AchievementResponse, error) {
	if !access.CanWrite(p, user.ID, user.OrgScope()) {
		return nil, ErrForbidden
	}

	values, err := s.normalizeSlots(slots)
	if err != nil {
		return nil, err
	}

	record := &model.Achievement{UserID: user.ID, LastUpdated: s.now()}
	record.SetSlots(values)

	info := clientInfoFrom(ctx)
	actorID := p.ID
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Achievement.Upsert(ctx, record); err != nil {
			return err
		}
		return tx.AuditLog.Create(ctx, &model.AuditLog{
			UserID:      &actorID,
			Action:      action,
			Description: description,
			IPAddress:   info.IP,
			UserAgent:   info.UserAgent,
			CreatedAt:   record.LastUpdated,
		})
	})
	if err != nil {
		s.logger.Error("failed to store achievements",
			zap.Int64("user_id", user.ID),
			zap.Int64("actor_id", p.ID),
			zap.Error(err),
		)
		return nil, storeError(err)
	}

	s.logger.Info("achievements stored",
		zap.Int64("user_id", user.ID),
		zap.Int64("actor_id", p.ID),
		zap.String("action", action),
	)
	s.invalidateStatistics(ctx)
	return toAchievementResponse(user, record), nil
}

// invalidateStatistics drops cached counts. A failure only leaves them stale until the TTL.
func (s *achievementService) invalidateStatistics(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, statisticsKeyPrefix); err != nil {
		s.logger.Warn("statistics cache invalidation failed", zap.Error(err))
	}
}

// normalizeSlots trims every value, maps empty to nil and enforces the length limit.
// Slot numbers outside 1..SlotCount are ignored.
func (s *achievementService) normalizeSlots(in map[int]string) ([model.SlotCount]*string, error) {
	var out [model.SlotCount]*string
	for n, raw := range in {
		if n < 1 || n > model.SlotCount {
			continue
		}
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		if utf8.RuneCountInString(v) > s.cfg.MaxLength {
			if !s.cfg.TruncateOverflow {
				return out, ErrSlotTooLong.WithReason(fmt.Sprintf(
					"досягнення %d перевищує %d символів", n, s.cfg.MaxLength))
			}
			v = truncateRunes(v, s.cfg.MaxLength)
			metrics.SlotTruncationsTotal.Inc()
			s.logger.Warn("achievement slot truncated", zap.Int("slot", n), zap.Int("max_length", s.cfg.MaxLength))
		}
		out[n-1] = &v
	}
	return out, nil
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ────────────────────── ExportCSV ──────────────────────

func (s *achievementService) ExportCSV(ctx context.Context, p access.Principal, targetUserID int64, opts ExportOptions) (*File, error) {
	enc, err := transcoder.ParseEncoding(opts.Encoding, transcoder.Encoding(s.cfg.DefaultEncoding))
	if err != nil {
		return nil, err
	}

	user, err := s.authorizedTarget(ctx, p, targetUserID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(p, user.ID, user.OrgScope()) {
		return nil, ErrForbidden
	}
	record, err := s.loadRecord(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	body, err := transcoder.Encode(
		transcoder.Record{FullName: user.FullName, Slots: record.Slots()},
		transcoder.EncodeOptions{Banner: s.cfg.Banner, Encoding: enc, IncludeEmptyRows: opts.IncludeEmpty},
	)
	if err != nil {
		return nil, err
	}

	metrics.CSVExportsTotal.WithLabelValues(string(enc)).Inc()
	return &File{
		Filename:    transcoder.Filename(user.FullName, s.now()),
		ContentType: enc.ContentType(),
		Body:        body,
	}, nil
}

// ────────────────────── ImportCSV ──────────────────────

func (s *achievementService) ImportCSV(ctx context.Context, p access.Principal, targetUserID int64, data []byte) (*dto.ImportResponse, error) {
	resp, err := s.importCSV(ctx, p, targetUserID, data)
	switch {
	case err == nil:
		metrics.CSVImportsTotal.WithLabelValues("ok").Inc()
	case apperrors.IsRetryable(err):
		metrics.CSVImportsTotal.WithLabelValues("error").Inc()
	default:
		metrics.CSVImportsTotal.WithLabelValues("invalid").Inc()
	}
	return resp, err
}

func (s *achievementService) importCSV(ctx context.Context, p access.Principal, targetUserID int64, data []byte) (*dto.ImportResponse, error) {
	if s.cfg.ImportMaxBytes > 0 && int64(len(data)) > s.cfg.ImportMaxBytes {
		return nil, ErrFileTooLarge
	}

	user, err := s.authorizedTarget(ctx, p, targetUserID)
	if err != nil {
		return nil, err
	}
	if !access.CanWrite(p, user.ID, user.OrgScope()) {
		return nil, ErrForbidden
	}

	slots, err := transcoder.Decode(data)
	if err != nil {
		return nil, err
	}

	record, err := s.write(ctx, p, user, slots, model.ActionImportAchievements,
		fmt.Sprintf("Імпортовано досягнення з CSV для користувача ID %d", user.ID))
	if err != nil {
		return nil, err
	}
	return &dto.ImportResponse{ImportedSlots: len(slots), Record: record}, nil
}

// ── helpers ──

// authorizedTarget refuses callers the policy denies regardless of placement, so a
// missing user is only reported to those who could have seen it.
func (s *achievementService) authorizedTarget(ctx context.Context, p access.Principal, id int64) (*model.User, error) {
	if allowed, decided := access.Precheck(p, id); decided && !allowed {
		return nil, ErrForbidden
	}
	return s.loadTarget(ctx, id)
}

// loadTarget resolves an active user; inactive users are reported as missing.
func (s *achievementService) loadTarget(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.Int64("user_id", id), zap.Error(err))
		return nil, storeError(err)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// loadRecord returns the stored record or an empty one when none exists yet.
func (s *achievementService) loadRecord(ctx context.Context, userID int64) (*model.Achievement, error) {
	record, err := s.repo.Achievement.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return &model.Achievement{UserID: userID}, nil
		}
		s.logger.Error("failed to load achievements", zap.Int64("user_id", userID), zap.Error(err))
		return nil, storeError(err)
	}
	return record, nil
}

func toAchievementResponse(user *model.User, record *model.Achievement) *dto.AchievementResponse {
	slots := make(map[string]*string, model.SlotCount)
	for i, v := range record.Slots() {
		slots[model.SlotColumn(i+1)] = v
	}

	var lastUpdated *string
	if !record.LastUpdated.IsZero() {
		ts := record.LastUpdated.Format(time.RFC3339)
		lastUpdated = &ts
	}

	return &dto.AchievementResponse{
		UserID:         user.ID,
		FullName:       user.FullName,
		EmployeeID:     user.EmployeeID,
		Position:       user.PositionOrEmpty(),
		FacultyName:    user.FacultyShortName(),
		DepartmentName: user.DepartmentShortName(),
		Achievements:   slots,
		LastUpdated:    lastUpdated,
	}
}

// resultLabel maps an error to the result label of write metrics.
func resultLabel(err error) string {
	switch apperrors.KindOf(err) {
	case nil:
		if err != nil {
			return "error"
		}
		return "ok"
	case apperrors.ErrForbidden:
		return "forbidden"
	case apperrors.ErrNotFound:
		return "not_found"
	case apperrors.ErrValidation:
		return "invalid"
	default:
		return "error"
	}
}
