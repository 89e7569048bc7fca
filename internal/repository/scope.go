package repository

import (
	"gorm.io/gorm"

	"github.com/seojacky/account-teacher/internal/access"
)

// scopeUsers restricts a query over the users table (aliased as alias) to s.
func scopeUsers(db *gorm.DB, alias string, s access.Scope) *gorm.DB {
	if s.None {
		return db.Where("1 = 0")
	}
	if s.UserID != nil {
		db = db.Where(alias+".id = ?", *s.UserID)
	}
	if s.FacultyID != nil {
		db = db.Where(alias+".faculty_id = ?", *s.FacultyID)
	}
	if s.DepartmentID != nil {
		db = db.Where(alias+".department_id = ?", *s.DepartmentID)
	}
	return db
}
