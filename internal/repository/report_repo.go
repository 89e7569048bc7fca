package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/model"
)

// RoleCount is the number of active users holding a role.
type RoleCount struct {
	RoleName    string `json:"role"`
	RoleDisplay string `json:"role_display"`
	Count       int64  `json:"count"`
}

// FacultyCount is the number of active users placed in a faculty.
type FacultyCount struct {
	FacultyID   int64  `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	Count       int64  `json:"count"`
}

// ReportRepository runs the aggregate queries behind the statistics page.
type ReportRepository interface {
	CountActiveUsers(ctx context.Context, scope access.Scope) (int64, error)
	CountUsersWithAchievements(ctx context.Context, scope access.Scope) (int64, error)
	CountByRole(ctx context.Context, scope access.Scope) ([]RoleCount, error)
	CountByFaculty(ctx context.Context, scope access.Scope) ([]FacultyCount, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository.
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) activeUsers(ctx context.Context, scope access.Scope) *gorm.DB {
	q := r.db.WithContext(ctx).Table("users u").Where("u.is_active = ?", true)
	return scopeUsers(q, "u", scope)
}

func (r *reportRepo) CountActiveUsers(ctx context.Context, scope access.Scope) (int64, error) {
	var n int64
	err := r.activeUsers(ctx, scope).Count(&n).Error
	return n, err
}

// anySlotFilled is true for a row with at least one non-blank slot.
var anySlotFilled = func() string {
	cols := model.SlotColumns()
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = "COALESCE(a." + c + ", '') <> ''"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}()

func (r *reportRepo) CountUsersWithAchievements(ctx context.Context, scope access.Scope) (int64, error) {
	var n int64
	err := r.activeUsers(ctx, scope).
		Joins("JOIN achievements a ON a.user_id = u.id").
		Where(anySlotFilled).
		Count(&n).Error
	return n, err
}

// CountByRole lists every role, including roles nobody in scope holds.
func (r *reportRepo) CountByRole(ctx context.Context, scope access.Scope) ([]RoleCount, error) {
	join, args := scopedUserJoin("ro.id = u.role_id", scope)
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Table("roles ro").
		Select("ro.name AS role_name, ro.display_name AS role_display, COUNT(u.id) AS count").
		Joins(join, args...).
		Group("ro.id, ro.name, ro.display_name").
		Order("ro.id ASC").
		Scan(&rows).Error
	return rows, err
}

// CountByFaculty lists every faculty, largest first.
func (r *reportRepo) CountByFaculty(ctx context.Context, scope access.Scope) ([]FacultyCount, error) {
	join, args := scopedUserJoin("f.id = u.faculty_id", scope)
	var rows []FacultyCount
	err := r.db.WithContext(ctx).
		Table("faculties f").
		Select("f.id AS faculty_id, f.short_name AS faculty_name, COUNT(u.id) AS count").
		Joins(join, args...).
		Group("f.id, f.short_name").
		Order("count DESC, f.short_name ASC").
		Scan(&rows).Error
	return rows, err
}

// scopedUserJoin builds a LEFT JOIN to active users in scope so that groups
// without members still appear with a zero count.
func scopedUserJoin(on string, scope access.Scope) (string, []interface{}) {
	cond := []string{on, "u.is_active = TRUE"}
	var args []interface{}
	if scope.None {
		cond = append(cond, "FALSE")
		return "LEFT JOIN users u ON " + strings.Join(cond, " AND "), nil
	}
	if scope.UserID != nil {
		cond = append(cond, "u.id = ?")
		args = append(args, *scope.UserID)
	}
	if scope.FacultyID != nil {
		cond = append(cond, "u.faculty_id = ?")
		args = append(args, *scope.FacultyID)
	}
	if scope.DepartmentID != nil {
		cond = append(cond, "u.department_id = ?")
		args = append(args, *scope.DepartmentID)
	}
	return "LEFT JOIN users u ON " + strings.Join(cond, " AND "), args
}
