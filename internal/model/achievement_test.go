package model

import "testing"

func TestAchievementSlots(t *testing.T) {
	var a Achievement
	if a.HasAny() {
		t.Fatal("zero record must be empty")
	}

	var slots [SlotCount]*string
	one, twenty := "one", "twenty"
	slots[0] = &one
	slots[19] = &twenty
	a.SetSlots(slots)

	if a.Achievement1 == nil || *a.Achievement1 != "one" {
		t.Errorf("slot 1 not set: %v", a.Achievement1)
	}
	if a.Achievement20 == nil || *a.Achievement20 != "twenty" {
		t.Errorf("slot 20 not set: %v", a.Achievement20)
	}
	if got := a.Slot(20); got == nil || *got != "twenty" {
		t.Errorf("Slot(20) = %v", got)
	}
	if a.Slot(0) != nil || a.Slot(21) != nil {
		t.Error("out of range slot must be nil")
	}
	if !a.HasAny() {
		t.Error("HasAny should be true")
	}
	if a.Slots() != slots {
		t.Error("Slots() does not mirror SetSlots")
	}
}

func TestSlotColumns(t *testing.T) {
	cols := SlotColumns()
	if len(cols) != SlotCount {
		t.Fatalf("expected %d columns, got %d", SlotCount, len(cols))
	}
	if cols[0] != "achievement_1" || cols[19] != "achievement_20" {
		t.Errorf("unexpected column names: %s .. %s", cols[0], cols[19])
	}
}

func TestPermissionsScanValue(t *testing.T) {
	var p Permissions
	if err := p.Scan([]byte(`{"export_reports":true,"manage_users":false}`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !p.Has("export_reports") || p.Has("manage_users") || p.Has("missing") {
		t.Errorf("unexpected permissions: %v", p)
	}

	v, err := Permissions(nil).Value()
	if err != nil || v != "{}" {
		t.Errorf("nil Permissions should encode as {}, got %v (%v)", v, err)
	}

	if err := p.Scan(42); err == nil {
		t.Error("Scan of int should fail")
	}
}
