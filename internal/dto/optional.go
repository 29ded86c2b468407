package dto

import "encoding/json"

// Optional is a tri-state JSON field for PATCH bodies: absent (zero
// value, Set=false) leaves the target untouched, an explicit null
// (Set && Null) clears a nullable field, and a value (Set && !Null)
// replaces it. A plain pointer cannot tell absent from null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON is only invoked when the field is present in the body.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ValuePtr returns the wrapped value as a nullable pointer: nil when
// the field carried an explicit null.
func (o Optional[T]) ValuePtr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}
