package model

import (
	"time"
)

// timeConvertible covers timestamp-like values (Firestore timestamps,
// protobuf timestamps) that expose their instant via AsTime.
type timeConvertible interface {
	AsTime() time.Time
}

// NormalizeDate converts the loosely-typed Date field of a transaction into a
// concrete time. It accepts time.Time, *time.Time, AsTime-style timestamp
// wrappers, ISO-8601 strings (with or without a time component), and numeric
// epoch values in seconds or milliseconds. The second return value is false
// when the value is absent or unparseable; callers bucket those rows under
// "unknown" rather than failing.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC(), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC(), true
	case timeConvertible:
		return d.AsTime().UTC(), true
	case string:
		return parseDateString(d)
	case int64:
		if d == 0 {
			return time.Time{}, false
		}
		return epochToTime(float64(d)), true
	case int:
		if d == 0 {
			return time.Time{}, false
		}
		return epochToTime(float64(d)), true
	case float64:
		if d == 0 {
			return time.Time{}, false
		}
		return epochToTime(d), true
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// epochToTime treats values larger than 1e12 as milliseconds, otherwise seconds.
func epochToTime(v float64) time.Time {
	if v > 1e12 {
		return time.UnixMilli(int64(v)).UTC()
	}
	return time.Unix(int64(v), 0).UTC()
}

// MonthKey returns the YYYY-MM bucket key for a transaction date, matching the
// first seven characters of an ISO date string. Unparseable dates bucket
// under "unknown".
func MonthKey(v any) string {
	t, ok := NormalizeDate(v)
	if !ok {
		return "unknown"
	}
	return t.Format("2006-01")
}

// QuarterOf maps a date to its calendar quarter label (Jan–Mar ⇒ Q1, and so
// on). This is the date-derived quarter used by payee year-to-date summaries;
// tax summaries use the precomputed QuarterlyPeriod field instead. The two
// paths intentionally coexist — see the note on quarter derivation in
// internal/report/aggregate.go.
func QuarterOf(t time.Time) string {
	switch (int(t.Month()) - 1) / 3 {
	case 0:
		return "Q1"
	case 1:
		return "Q2"
	case 2:
		return "Q3"
	default:
		return "Q4"
	}
}

// ValidQuarterLabel reports whether s is one of the four precomputed
// quarterly period labels.
func ValidQuarterLabel(s string) bool {
	switch s {
	case "Q1", "Q2", "Q3", "Q4":
		return true
	}
	return false
}
