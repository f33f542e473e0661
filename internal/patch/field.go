// Package patch holds the sparse value type used by PATCH payloads.
package patch

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Field is a value that is either unset, explicitly null, or set.
// The zero value is unset.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// IsSet reports whether the field was supplied, null included.
func (f Field[T]) IsSet() bool { return f.present }

func (f Field[T]) IsNull() bool { return f.present && f.null }

// Get returns the value and false when the field is unset or null.
func (f Field[T]) Get() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Apply writes the field onto dst when present. Null writes the zero value.
func (f Field[T]) Apply(dst *T) {
	if !f.present {
		return
	}
	if f.null {
		var zero T
		*dst = zero
		return
	}
	*dst = f.value
}

// ApplyPtr is Apply for nullable destinations: null stores nil.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.present {
		return
	}
	if f.null {
		*dst = nil
		return
	}
	v := f.value
	*dst = &v
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what separates unset from null.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}
