// Package normalize provides JSON field types that apply the API
// boundary's data-cleansing rules in one place: optional numeric fields
// submitted as empty strings (or omitted) become NULL, and numeric
// strings are coerced to numbers before storage.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Float is an optional float64. Absent, null and "" all mean NULL.
type Float struct {
	Value float64
	Valid bool
}

func (f *Float) UnmarshalJSON(b []byte) error {
	s, null, err := unquote(b)
	if err != nil || null {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", s)
	}
	f.Value, f.Valid = v, true
	return nil
}

// Ptr returns the nullable form used by the models.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// Int is an optional int with the same cleansing rules as Float.
type Int struct {
	Value int
	Valid bool
}

func (i *Int) UnmarshalJSON(b []byte) error {
	s, null, err := unquote(b)
	if err != nil || null {
		return err
	}
	// Tolerate "2019.0" style inputs from the form layer.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", s)
	}
	i.Value, i.Valid = int(v), true
	return nil
}

func (i Int) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// Uint is an optional unsigned id (foreign keys submitted by the UI).
type Uint struct {
	Value uint
	Valid bool
}

func (u *Uint) UnmarshalJSON(b []byte) error {
	s, null, err := unquote(b)
	if err != nil || null {
		return err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("value %q is not a valid id", s)
	}
	u.Value, u.Valid = uint(v), true
	return nil
}

func (u Uint) Ptr() *uint {
	if !u.Valid {
		return nil
	}
	v := u.Value
	return &v
}

// Date is an optional timestamp. Accepts RFC 3339 and plain
// "2006-01-02" date strings; "" and null mean NULL.
type Date struct {
	Value time.Time
	Valid bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, null, err := unquote(b)
	if err != nil || null {
		return err
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, perr := time.Parse(layout, s); perr == nil {
			d.Value, d.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("value %q is not a valid date", s)
}

func (d Date) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}

// unquote reduces a raw JSON token to its trimmed string form,
// reporting whether it denotes NULL.
func unquote(b []byte) (string, bool, error) {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return "", true, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" {
		return "", true, nil
	}
	return s, false, nil
}
