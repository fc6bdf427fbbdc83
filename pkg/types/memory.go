package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MemoryProfile holds the optional per-user notes that get woven into
// generated poems. At most one profile exists per user; saving replaces the
// whole document.
type MemoryProfile struct {
	UserID               string               `json:"user_id" db:"user_id"`
	NamePreference       string               `json:"name_preference" db:"name_preference"`
	PersonalDetails      PersonalDetails      `json:"personal_details" db:"personal_details"`
	ImportantConnections ImportantConnections `json:"important_connections" db:"important_connections"`
	FreeformMemories     FreeformMemories     `json:"freeform_memories" db:"freeform_memories"`
	CreatedAt            int64                `json:"created_at" db:"created_at"`
	UpdatedAt            int64                `json:"updated_at" db:"updated_at"`
}

type PersonalDetail struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Connection struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Details      string `json:"details"`
}

type (
	PersonalDetails      []PersonalDetail
	ImportantConnections []Connection
	FreeformMemories     []string
)

func (s PersonalDetails) Value() (driver.Value, error)      { return jsonValue(s) }
func (s *PersonalDetails) Scan(value any) error             { return jsonScan(value, s) }
func (s ImportantConnections) Value() (driver.Value, error) { return jsonValue(s) }
func (s *ImportantConnections) Scan(value any) error        { return jsonScan(value, s) }
func (s FreeformMemories) Value() (driver.Value, error)     { return jsonValue(s) }
func (s *FreeformMemories) Scan(value any) error            { return jsonScan(value, s) }

func jsonValue(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func jsonScan(value any, dest any) error {
	if value == nil {
		return nil
	}
	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, dest)
	case string:
		return json.Unmarshal([]byte(raw), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
