package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var null = []byte("null")

// StringField records whether a string key was present in the payload.
// Present-but-null leaves Value nil.
type StringField struct {
	Set   bool
	Value *string
}

func (f *StringField) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, null) {
		f.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected a string")
	}
	f.Value = &s
	return nil
}

// NumberField accepts a JSON number or a numeric string; "" and null mean no value.
type NumberField struct {
	Set   bool
	Value *float64
}

func (f *NumberField) UnmarshalJSON(b []byte) error {
	f.Set = true
	f.Value = nil
	if bytes.Equal(b, null) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("expected a number")
	}
	f.Value = &v
	return nil
}

// DateField accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
type DateField struct {
	Set   bool
	Value *time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (f *DateField) UnmarshalJSON(b []byte) error {
	f.Set = true
	f.Value = nil
	if bytes.Equal(b, null) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected a date string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			f.Value = &t
			return nil
		}
	}
	return fmt.Errorf("expected an RFC 3339 timestamp or YYYY-MM-DD date")
}
