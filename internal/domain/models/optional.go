package model

import (
	"bytes"
	"encoding/json"
)

// Optional tracks whether a JSON field was omitted, sent as null, or sent with a value.
// A value that cannot be decoded into T is kept as Invalid instead of failing the whole body.
type Optional[T any] struct {
	Value   T
	Set     bool
	Null    bool
	Invalid bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports a usable, non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null && !o.Invalid
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		o.Invalid = true
	}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null || o.Invalid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
