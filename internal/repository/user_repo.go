package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/model"
)

// UserSummary is a row of the users list shown to supervisors.
type UserSummary struct {
	ID             int64      `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	FullName       string     `json:"full_name"`
	Position       *string    `json:"position"`
	RoleName       string     `json:"role"`
	RoleDisplay    string     `json:"role_display"`
	FacultyName    *string    `json:"faculty_name"`
	DepartmentName *string    `json:"department_name"`
	LastUpdated    *time.Time `json:"last_updated"`
}

// UserRepository is the user directory data access interface.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	ListSummaries(ctx context.Context, scope access.Scope, offset, limit int) ([]UserSummary, int64, error)
	ListActive(ctx context.Context, scope access.Scope) ([]model.User, error)
}

// userRepo is the GORM implementation of UserRepository.
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// GetByID loads a user with role and org placement regardless of IsActive.
func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Faculty").
		Preload("Department").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Faculty").
		Preload("Department").
		Where("employee_id = ?", employeeID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// ListSummaries pages active users inside scope ordered by full name.
func (r *userRepo) ListSummaries(ctx context.Context, scope access.Scope, offset, limit int) ([]UserSummary, int64, error) {
	var total int64
	count := scopeUsers(r.db.WithContext(ctx).Table("users u").Where("u.is_active = ?", true), "u", scope)
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []UserSummary
	q := r.db.WithContext(ctx).
		Table("users u").
		Select(`u.id, u.employee_id, u.full_name, u.position,
			r.name AS role_name, r.display_name AS role_display,
			f.short_name AS faculty_name, d.short_name AS department_name,
			a.last_updated`).
		Joins("JOIN roles r ON r.id = u.role_id").
		Joins("LEFT JOIN faculties f ON f.id = u.faculty_id").
		Joins("LEFT JOIN departments d ON d.id = u.department_id").
		Joins("LEFT JOIN achievements a ON a.user_id = u.id").
		Where("u.is_active = ?", true)
	err := scopeUsers(q, "u", scope).
		Order("u.full_name ASC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListActive returns every active user inside scope with org placement loaded,
// ordered by faculty, department and full name.
func (r *userRepo) ListActive(ctx context.Context, scope access.Scope) ([]model.User, error) {
	var users []model.User
	q := r.db.WithContext(ctx).
		Preload("Faculty").
		Preload("Department").
		Joins("LEFT JOIN faculties f ON f.id = users.faculty_id").
		Joins("LEFT JOIN departments d ON d.id = users.department_id").
		Where("users.is_active = ?", true)
	err := scopeUsers(q, "users", scope).
		Order("f.short_name ASC NULLS LAST, d.short_name ASC NULLS LAST, users.full_name ASC").
		Find(&users).Error
	return users, err
}
