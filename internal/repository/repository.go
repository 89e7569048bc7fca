package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the aggregate entry point of all repositories.
type Repository struct {
	db *gorm.DB

	User        UserRepository
	Achievement AchievementRepository
	Faculty     FacultyRepository
	Department  DepartmentRepository
	AuditLog    AuditLogRepository
	Report      ReportRepository
}

// NewRepository builds the aggregate over a gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Achievement: NewAchievementRepo(db),
		Faculty:     NewFacultyRepo(db),
		Department:  NewDepartmentRepo(db),
		AuditLog:    NewAuditLogRepo(db),
		Report:      NewReportRepo(db),
	}
}

// BeginTx opens a transaction; pair it with WithTx.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns an aggregate whose repositories run on tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn with a transactional aggregate and commits when fn returns nil.
// An aggregate assembled without a connection (in-memory test doubles) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks the database connection, used by the readiness probe.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
