package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// IntMap is a custom type for JSONB columns holding string->int mappings
// (raw answers and per-area scores).
type IntMap map[string]int

// Scan implements sql.Scanner so GORM can read JSONB data into an IntMap.
func (m *IntMap) Scan(value interface{}) error {
	if value == nil {
		*m = IntMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*m = IntMap{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value implements driver.Valuer so GORM can write an IntMap as JSONB.
func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// StringArray is a custom type for JSONB columns holding string lists.
type StringArray []string

// Scan implements sql.Scanner for StringArray.
func (o *StringArray) Scan(value interface{}) error {
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value implements driver.Valuer for StringArray. An empty array is stored
// as [] rather than null.
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}
