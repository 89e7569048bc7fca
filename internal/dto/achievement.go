package dto

import (
	"strconv"
	"strings"

	"github.com/seojacky/account-teacher/internal/model"
	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// ── achievement DTO ──

// AchievementResponse is a record with display fields joined from the user directory.
// Slots are keyed achievement_1..achievement_20; empty slots are null.
type AchievementResponse struct {
	UserID         int64              `json:"user_id"`
	FullName       string             `json:"full_name"`
	EmployeeID     string             `json:"employee_id"`
	Position       string             `json:"position"`
	FacultyName    string             `json:"faculty_name"`
	DepartmentName string             `json:"department_name"`
	Achievements   map[string]*string `json:"achievements"`
	LastUpdated    *string            `json:"last_updated"`
}

// UpsertAchievementsRequest is the full slot set; absent keys clear their slot.
type UpsertAchievementsRequest map[string]*string

// ErrUnknownSlotKey rejects keys other than achievement_1..achievement_20.
var ErrUnknownSlotKey = apperrors.Validation("невідоме поле досягнення")

// Slots converts the request into slot number -> value, dropping nulls.
func (r UpsertAchievementsRequest) Slots() (map[int]string, error) {
	out := make(map[int]string, len(r))
	for key, value := range r {
		n, ok := slotNumber(key)
		if !ok {
			return nil, ErrUnknownSlotKey.WithReason("невідоме поле досягнення: " + key)
		}
		if value != nil {
			out[n] = *value
		}
	}
	return out, nil
}

func slotNumber(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, "achievement_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > model.SlotCount || strconv.Itoa(n) != rest {
		return 0, false
	}
	return n, true
}

// ExportRequest selects the file variant of a per-user export.
type ExportRequest struct {
	Encoding     string `form:"encoding"      binding:"omitempty,oneof=utf8bom utf8 windows1251"`
	IncludeEmpty bool   `form:"include_empty"`
}

// ImportResponse reports what an import wrote.
type ImportResponse struct {
	ImportedSlots int                  `json:"imported_slots"`
	Record        *AchievementResponse `json:"record"`
}
