package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the text forms SQLite may hand back for a timestamp
// column, most notably on RETURNING where the declared type is not applied.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339Nano,
}

// timeScanner scans timestamps delivered either as time.Time or as text.
type timeScanner struct {
	dst *time.Time
}

func scanTime(dst *time.Time) *timeScanner {
	return &timeScanner{dst: dst}
}

func (s *timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = time.Time{}
		return nil
	case time.Time:
		*s.dst = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s *timeScanner) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.dst = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", v)
}
