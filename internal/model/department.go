package model

import "time"

// Faculty maps to faculties.
type Faculty struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	Name      string    `gorm:"type:varchar(255);not null"         json:"name"`
	ShortName string    `gorm:"type:varchar(50);not null"          json:"short_name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Faculty) TableName() string { return "faculties" }

// Department maps to departments.
type Department struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	FacultyID int64     `gorm:"not null"                           json:"faculty_id"`
	Name      string    `gorm:"type:varchar(255);not null"         json:"name"`
	ShortName string    `gorm:"type:varchar(50);not null"          json:"short_name"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// TableName sets the table name.
func (Department) TableName() string { return "departments" }
