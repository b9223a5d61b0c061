package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Column is one named value of a system row.
type Column struct {
	Name  string
	Value any
}

// SystemRecord is a row of the system table as the database returned it.
// It marshals to a JSON object whose keys keep the table's column order.
type SystemRecord struct {
	Columns []Column
}

func NewSystemRecord(names []string, values []any) (*SystemRecord, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("column count mismatch: %d names, %d values", len(names), len(values))
	}
	r := &SystemRecord{Columns: make([]Column, len(names))}
	for i, n := range names {
		r.Columns[i] = Column{Name: n, Value: values[i]}
	}
	return r, nil
}

// Get returns the value of the first column called name.
func (r *SystemRecord) Get(name string) (any, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

func (r *SystemRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
