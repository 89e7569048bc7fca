package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ── PostgreSQL JSONB custom type ──

// Permissions maps to a JSONB object column and implements GORM Scanner/Valuer.
type Permissions map[string]bool

// Scan decodes the JSONB text returned by PostgreSQL.
func (p *Permissions) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("Permissions.Scan: unsupported type %T", src)
	}
	out := Permissions{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("Permissions.Scan: %w", err)
	}
	*p = out
	return nil
}

// Value encodes the map as a JSON object.
func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]bool(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Has reports whether the permission is granted.
func (p Permissions) Has(name string) bool { return p[name] }

// Timestamps are the audit columns shared by mutable tables.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
