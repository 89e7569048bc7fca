package model

import "time"

// Audit actions.
const (
	ActionUpdateAchievements = "update_achievements"
	ActionImportAchievements = "import_achievements"
	ActionLogin              = "login"
	ActionLoginFailed        = "login_failed"
	ActionLogout             = "logout"
)

// AuditLog maps to audit_log. Rows are append-only.
type AuditLog struct {
	ID          int64     `gorm:"primaryKey"                         json:"id"`
	UserID      *int64    `                                          json:"user_id,omitempty"`
	Action      string    `gorm:"type:varchar(64);not null"          json:"action"`
	Description string    `gorm:"type:text"                          json:"description"`
	IPAddress   string    `gorm:"type:varchar(64)"                   json:"ip_address"`
	UserAgent   string    `gorm:"type:text"                          json:"user_agent"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (AuditLog) TableName() string { return "audit_log" }
