package dto

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes a JSON field that is absent, explicitly null, or set.
//
//	{}                 -> Set=false
//	{"driverId": null} -> Set=true, Valid=false
//	{"driverId": "x"}  -> Set=true, Valid=true, Value="x"
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T

		n.Value = zero
		n.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err //nolint:wrapcheck
	}

	n.Valid = true

	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value) //nolint:wrapcheck
}

// Ptr returns nil for null/absent values, otherwise a pointer to the value.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}

	v := n.Value

	return &v
}

// IsSet reports whether the field was present in the payload, null included.
func (n Nullable[T]) IsSet() bool {
	return n.Set
}

// SQLValue returns the value to bind for an update: nil clears the column.
func (n Nullable[T]) SQLValue() any {
	if !n.Valid {
		return nil
	}

	return n.Value
}
