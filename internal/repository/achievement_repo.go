package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seojacky/account-teacher/internal/model"
)

// AchievementRepository is the achievement record data access interface.
type AchievementRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.Achievement, error)
	ListByUserIDs(ctx context.Context, userIDs []int64) ([]model.Achievement, error)
	// Upsert writes all slots and last_updated of a.UserID in one statement.
	Upsert(ctx context.Context, a *model.Achievement) error
}

// achievementRepo is the GORM implementation of AchievementRepository.
type achievementRepo struct {
	db *gorm.DB
}

// NewAchievementRepo creates an AchievementRepository.
func NewAchievementRepo(db *gorm.DB) AchievementRepository {
	return &achievementRepo{db: db}
}

func (r *achievementRepo) GetByUserID(ctx context.Context, userID int64) (*model.Achievement, error) {
	var a model.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// listChunk keeps IN lists well below the PostgreSQL bind parameter limit.
const listChunk = 1000

func (r *achievementRepo) ListByUserIDs(ctx context.Context, userIDs []int64) ([]model.Achievement, error) {
	out := make([]model.Achievement, 0, len(userIDs))
	for start := 0; start < len(userIDs); start += listChunk {
		end := min(start+listChunk, len(userIDs))
		var batch []model.Achievement
		if err := r.db.WithContext(ctx).
			Where("user_id IN ?", userIDs[start:end]).
			Find(&batch).Error; err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (r *achievementRepo) Upsert(ctx context.Context, a *model.Achievement) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(append(model.SlotColumns(), "last_updated")),
		}).
		Create(a).Error
}
