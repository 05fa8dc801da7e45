package analytics

import (
	"fmt"
	"time"
)

// CalendarDate is a "YYYY-MM-DD" grouping key. DATE(col) comes back as a
// time value from postgres and as text from sqlite; scanning through
// this type keeps the trend queries driver-agnostic.
type CalendarDate string

func (d *CalendarDate) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = CalendarDate(v.Format("2006-01-02"))
	case string:
		*d = trimToDate(v)
	case []byte:
		*d = trimToDate(string(v))
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", value)
	}
	return nil
}

func trimToDate(s string) CalendarDate {
	if len(s) > 10 {
		s = s[:10]
	}
	return CalendarDate(s)
}
