package model

import (
	"time"

	"github.com/seojacky/account-teacher/internal/access"
)

// Role maps to roles.
type Role struct {
	ID          int64       `gorm:"primaryKey"                     json:"id"`
	Name        string      `gorm:"type:varchar(32);not null"      json:"name"`
	DisplayName string      `gorm:"type:varchar(100);not null"     json:"display_name"`
	Permissions Permissions `gorm:"type:jsonb;not null"            json:"permissions"`
	CreatedAt   time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Role) TableName() string { return "roles" }

// User maps to users. Deactivated users are kept with IsActive=false.
type User struct {
	ID           int64      `gorm:"primaryKey"                     json:"id"`
	EmployeeID   string     `gorm:"type:varchar(50);not null"      json:"employee_id"`
	PasswordHash string     `gorm:"type:varchar(255);not null"     json:"-"`
	FullName     string     `gorm:"type:varchar(255);not null"     json:"full_name"`
	Email        *string    `gorm:"type:varchar(255)"              json:"email,omitempty"`
	Position     *string    `gorm:"type:varchar(255)"              json:"position,omitempty"`
	RoleID       int64      `gorm:"not null"                       json:"role_id"`
	FacultyID    *int64     `                                      json:"faculty_id,omitempty"`
	DepartmentID *int64     `                                      json:"department_id,omitempty"`
	IsActive     bool       `gorm:"not null;default:true"          json:"is_active"`
	LastLogin    *time.Time `                                      json:"last_login,omitempty"`
	Timestamps

	// associations
	Role       *Role       `gorm:"foreignKey:RoleID"       json:"role,omitempty"`
	Faculty    *Faculty    `gorm:"foreignKey:FacultyID"    json:"faculty,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// RoleName returns the role of a user loaded with its Role association.
func (u *User) RoleName() access.Role {
	if u.Role == nil {
		return ""
	}
	return access.Role(u.Role.Name)
}

// OrgScope returns the organisational placement used by access checks.
func (u *User) OrgScope() access.OrgScope {
	return access.OrgScope{FacultyID: u.FacultyID, DepartmentID: u.DepartmentID}
}

// Principal builds the access principal for an authenticated user.
func (u *User) Principal() access.Principal {
	return access.Principal{
		ID:           u.ID,
		Role:         u.RoleName(),
		FacultyID:    u.FacultyID,
		DepartmentID: u.DepartmentID,
	}
}

// FacultyShortName is the faculty label used in exports, empty when unplaced.
func (u *User) FacultyShortName() string {
	if u.Faculty == nil {
		return ""
	}
	return u.Faculty.ShortName
}

// DepartmentShortName is the department label used in exports, empty when unplaced.
func (u *User) DepartmentShortName() string {
	if u.Department == nil {
		return ""
	}
	return u.Department.ShortName
}

// PositionOrEmpty dereferences Position.
func (u *User) PositionOrEmpty() string {
	if u.Position == nil {
		return ""
	}
	return *u.Position
}
