package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores V in a jsonb column.
type JSON[T any] struct {
	V T
}

func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{V: v}
}

// Value implements driver.Valuer.
func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}

	return b, nil
}

// Scan implements sql.Scanner.
func (j *JSON[T]) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		var zero T
		j.V = zero

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	if err := json.Unmarshal(raw, &j.V); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}

	return nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSON[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.V)
}
