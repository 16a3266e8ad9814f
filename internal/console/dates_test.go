// ABOUTME: Tests for date range presets and display formatting
// ABOUTME: Uses std testing; no fixtures needed

package console

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "-"},
		{"rfc3339", "2026-08-01T10:30:00Z", "Aug 1, 2026"},
		{"rfc3339 nano", "2026-08-01T10:30:00.123456Z", "Aug 1, 2026"},
		{"sql style", "2026-08-01 10:30:00", "Aug 1, 2026"},
		{"date only", "2026-08-01", "Aug 1, 2026"},
		{"unparseable passes through", "last tuesday", "last tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDate(tt.value); got != tt.want {
				t.Errorf("formatDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRangeForPreset(t *testing.T) {
	now := time.Now()

	from, to := rangeForPreset("30d", "", "")
	if want := now.AddDate(0, 0, -30).Format(isoDate); from != want {
		t.Errorf("30d from = %q, want %q", from, want)
	}
	if want := now.Format(isoDate); to != want {
		t.Errorf("30d to = %q, want %q", to, want)
	}

	from, to = rangeForPreset("custom", "2026-01-01", "2026-02-01")
	if from != "2026-01-01" || to != "2026-02-01" {
		t.Errorf("custom range = %q..%q", from, to)
	}

	// Bad custom dates fall back to the 7 day window.
	from, _ = rangeForPreset("custom", "yesterday", "2026-02-01")
	if want := now.AddDate(0, 0, -7).Format(isoDate); from != want {
		t.Errorf("bad custom from = %q, want %q", from, want)
	}

	from, _ = rangeForPreset("", "", "")
	if want := now.AddDate(0, 0, -7).Format(isoDate); from != want {
		t.Errorf("default from = %q, want %q", from, want)
	}
}
