package model

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		want   time.Time
		wantOK bool
	}{
		{"time.Time", want, want, true},
		{"pointer", &want, want, true},
		{"ISO date string", "2025-03-15", want, true},
		{"RFC3339 string", "2025-03-15T00:00:00Z", want, true},
		{"slash date string", "2025/03/15", want, true},
		{"epoch seconds", int64(1742000400), time.Unix(1742000400, 0).UTC(), true},
		{"epoch millis", float64(1742000400000), time.UnixMilli(1742000400000).UTC(), true},
		{"nil", nil, time.Time{}, false},
		{"empty string", "", time.Time{}, false},
		{"garbage string", "not-a-date", time.Time{}, false},
		{"zero time", time.Time{}, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeDate(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("NormalizeDate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey("2025-03-15"); got != "2025-03" {
		t.Errorf("MonthKey = %q, want 2025-03", got)
	}
	if got := MonthKey(nil); got != "unknown" {
		t.Errorf("MonthKey(nil) = %q, want unknown", got)
	}
	if got := MonthKey("bogus"); got != "unknown" {
		t.Errorf("MonthKey(bogus) = %q, want unknown", got)
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Q1"}, {time.March, "Q1"},
		{time.April, "Q2"}, {time.June, "Q2"},
		{time.July, "Q3"}, {time.September, "Q3"},
		{time.October, "Q4"}, {time.December, "Q4"},
	}
	for _, tt := range tests {
		got := QuarterOf(time.Date(2025, tt.month, 10, 0, 0, 0, 0, time.UTC))
		if got != tt.want {
			t.Errorf("QuarterOf(%v) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestResolvePayeeKey(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{"payeeId wins", Transaction{PayeeID: "p-1", Payee: "Acme"}, "p-1"},
		{"payee fallback", Transaction{Payee: "Acme"}, "Acme"},
		{"blank payee", Transaction{Payee: "   "}, UnknownPayee},
		{"nothing", Transaction{}, UnknownPayee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePayeeKey(tt.tx); got != tt.want {
				t.Errorf("ResolvePayeeKey = %q, want %q", got, tt.want)
			}
		})
	}
}
