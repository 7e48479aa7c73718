package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Nullable is a request field that remembers whether its key was present in
// the JSON payload. A present `null` sets Present and leaves Value nil.
type Nullable[T any] struct {
	Value   *T
	Present bool
}

func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Value: &v, Present: true}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsNull reports an explicit null in the payload.
func (n Nullable[T]) IsNull() bool {
	return n.Present && n.Value == nil
}

// ValidationValue is what struct validation sees: the wrapped pointer, nil
// when absent or null. A present zero value is still validated.
func (n Nullable[T]) ValidationValue() any {
	return n.Value
}

// Changes collects the present fields of an update payload as column/value
// pairs ready for gorm's Updates.
type Changes map[string]any

func setColumn[T any](c Changes, column string, n Nullable[T]) {
	if !n.Present {
		return
	}
	if n.Value == nil {
		c[column] = nil
		return
	}
	c[column] = *n.Value
}

// requireColumn is setColumn for NOT NULL columns.
func requireColumn[T any](c Changes, column string, n Nullable[T]) error {
	if n.IsNull() {
		return fmt.Errorf("%s may not be null", column)
	}
	setColumn(c, column, n)
	return nil
}

// requireText is requireColumn for NOT NULL text columns; blanks are rejected.
func requireText(c Changes, column string, n Nullable[string]) error {
	if n.Present && n.Value != nil && strings.TrimSpace(*n.Value) == "" {
		return fmt.Errorf("%s may not be empty", column)
	}
	return requireColumn(c, column, n)
}
