// ABOUTME: Date helpers for dashboard ranges and display formatting
// ABOUTME: Backend dates are ISO strings; display uses a short human form

package console

import "time"

const isoDate = "2006-01-02"

// formatDate renders a backend timestamp for display. Unparseable or empty
// values show as a dash rather than raw data.
func formatDate(value string) string {
	if value == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", isoDate} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

// daysAgo returns the ISO date n days before today.
func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(isoDate)
}

// today returns today's ISO date.
func today() string {
	return time.Now().Format(isoDate)
}

// rangeForPreset maps a dashboard preset to an inclusive [from, to] window.
// Custom ranges pass through as given; anything unrecognized falls back to
// the 7 day window.
func rangeForPreset(preset, from, to string) (string, string) {
	switch preset {
	case "30d":
		return daysAgo(30), today()
	case "90d":
		return daysAgo(90), today()
	case "custom":
		if validISODate(from) && validISODate(to) {
			return from, to
		}
		return daysAgo(7), today()
	default:
		return daysAgo(7), today()
	}
}

func validISODate(value string) bool {
	_, err := time.Parse(isoDate, value)
	return err == nil
}
