package repository

import "fleetflow/internal/normalize"

// Patch setters: a nil pointer means the field was absent from the
// request and the column is left untouched; a present normalize value
// stores either the coerced number/date or NULL.

func setString(m map[string]any, col string, v *string) {
	if v != nil {
		m[col] = *v
	}
}

func setFloat(m map[string]any, col string, v *normalize.Float) {
	if v != nil {
		m[col] = v.Ptr()
	}
}

func setInt(m map[string]any, col string, v *normalize.Int) {
	if v != nil {
		m[col] = v.Ptr()
	}
}

func setUint(m map[string]any, col string, v *normalize.Uint) {
	if v != nil {
		m[col] = v.Ptr()
	}
}

func setDate(m map[string]any, col string, v *normalize.Date) {
	if v != nil {
		m[col] = v.Ptr()
	}
}
