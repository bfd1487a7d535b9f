package storage

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Record is a single row: an insertion-ordered mapping from field name
// to value. Values are strings, float64 numbers, bools, or nil. There
// is no fixed schema; any record may carry any set of fields.
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]interface{})}
}

// Get returns the value for a field and whether the field is present.
func (r Record) Get(field string) (interface{}, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Set assigns a field value. A new field is appended; an existing
// field keeps its position.
func (r *Record) Set(field string, value interface{}) {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	if _, exists := r.values[field]; !exists {
		r.keys = append(r.keys, field)
	}
	r.values[field] = value
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]interface{}, len(r.values)),
	}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}

// Project rebuilds the record keeping only the named fields, in the
// given order. Fields the record does not have are left out.
func (r Record) Project(fields []string) Record {
	out := NewRecord()
	for _, f := range fields {
		if v, ok := r.values[f]; ok {
			out.Set(f, v)
		}
	}
	return out
}

// MarshalJSON emits the record as a JSON object with fields in
// insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the order its fields
// appear in.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	r.keys = nil
	r.values = make(map[string]interface{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			continue
		}
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return err
		}
		r.Set(key, value)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}
	return nil
}
