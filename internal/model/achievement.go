package model

import (
	"fmt"
	"time"
)

// SlotCount is the number of achievement categories per user.
const SlotCount = 20

// Achievement maps to achievements: at most one row per user (unique user_id).
type Achievement struct {
	ID            int64     `gorm:"primaryKey"                                 json:"-"`
	UserID        int64     `gorm:"not null;uniqueIndex:uq_achievements_user" json:"user_id"`
	Achievement1  *string   `gorm:"column:achievement_1;type:text"  json:"achievement_1"`
	Achievement2  *string   `gorm:"column:achievement_2;type:text"  json:"achievement_2"`
	Achievement3  *string   `gorm:"column:achievement_3;type:text"  json:"achievement_3"`
	Achievement4  *string   `gorm:"column:achievement_4;type:text"  json:"achievement_4"`
	Achievement5  *string   `gorm:"column:achievement_5;type:text"  json:"achievement_5"`
	Achievement6  *string   `gorm:"column:achievement_6;type:text"  json:"achievement_6"`
	Achievement7  *string   `gorm:"column:achievement_7;type:text"  json:"achievement_7"`
	Achievement8  *string   `gorm:"column:achievement_8;type:text"  json:"achievement_8"`
	Achievement9  *string   `gorm:"column:achievement_9;type:text"  json:"achievement_9"`
	Achievement10 *string   `gorm:"column:achievement_10;type:text" json:"achievement_10"`
	Achievement11 *string   `gorm:"column:achievement_11;type:text" json:"achievement_11"`
	Achievement12 *string   `gorm:"column:achievement_12;type:text" json:"achievement_12"`
	Achievement13 *string   `gorm:"column:achievement_13;type:text" json:"achievement_13"`
	Achievement14 *string   `gorm:"column:achievement_14;type:text" json:"achievement_14"`
	Achievement15 *string   `gorm:"column:achievement_15;type:text" json:"achievement_15"`
	Achievement16 *string   `gorm:"column:achievement_16;type:text" json:"achievement_16"`
	Achievement17 *string   `gorm:"column:achievement_17;type:text" json:"achievement_17"`
	Achievement18 *string   `gorm:"column:achievement_18;type:text" json:"achievement_18"`
	Achievement19 *string   `gorm:"column:achievement_19;type:text" json:"achievement_19"`
	Achievement20 *string   `gorm:"column:achievement_20;type:text" json:"achievement_20"`
	LastUpdated   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"         json:"last_updated"`
}

// TableName sets the table name.
func (Achievement) TableName() string { return "achievements" }

// SlotColumn returns the column name of slot n (1-based).
func SlotColumn(n int) string { return fmt.Sprintf("achievement_%d", n) }

// SlotColumns lists all slot columns in order.
func SlotColumns() []string {
	cols := make([]string, SlotCount)
	for i := range cols {
		cols[i] = SlotColumn(i + 1)
	}
	return cols
}

func (a *Achievement) slotRefs() [SlotCount]**string {
	return [SlotCount]**string{
		&a.Achievement1, &a.Achievement2, &a.Achievement3, &a.Achievement4, &a.Achievement5,
		&a.Achievement6, &a.Achievement7, &a.Achievement8, &a.Achievement9, &a.Achievement10,
		&a.Achievement11, &a.Achievement12, &a.Achievement13, &a.Achievement14, &a.Achievement15,
		&a.Achievement16, &a.Achievement17, &a.Achievement18, &a.Achievement19, &a.Achievement20,
	}
}

// Slots returns the slot values; index 0 is slot 1.
func (a *Achievement) Slots() [SlotCount]*string {
	var out [SlotCount]*string
	for i, ref := range a.slotRefs() {
		out[i] = *ref
	}
	return out
}

// SetSlots overwrites every slot.
func (a *Achievement) SetSlots(slots [SlotCount]*string) {
	for i, ref := range a.slotRefs() {
		*ref = slots[i]
	}
}

// Slot returns slot n (1-based), nil when empty or out of range.
func (a *Achievement) Slot(n int) *string {
	if n < 1 || n > SlotCount {
		return nil
	}
	return *a.slotRefs()[n-1]
}

// HasAny reports whether at least one slot holds text.
func (a *Achievement) HasAny() bool {
	for _, s := range a.Slots() {
		if s != nil && *s != "" {
			return true
		}
	}
	return false
}
