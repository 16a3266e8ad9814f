// ABOUTME: Dashboard analytics page with preset and custom date ranges
// ABOUTME: Renders the typed total plus the raw summary payload

package console

import (
	"encoding/json"
	"net/http"
)

// handleDashboard renders analytics for the selected date window.
func (c *Console) handleDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	preset := query.Get("preset")
	if preset == "" {
		preset = "7d"
	}
	from, to := rangeForPreset(preset, query.Get("from"), query.Get("to"))

	data := dashboardData{
		Title:  "Dashboard",
		User:   c.currentUser(),
		Preset: preset,
		From:   from,
		To:     to,
	}

	summary, err := c.client.GetDashboardSummary(r.Context(), from, to)
	if err != nil {
		c.logger.Error("failed to load dashboard summary", "error", err, "from", from, "to", to)
		data.Error = backendMessage(err)
		c.renderDashboard(w, data)
		return
	}

	data.Total = summary.TotalGenerated()
	data.RawSummary = prettyJSON(summary.Raw())
	c.renderDashboard(w, data)
}

// prettyJSON indents a raw payload for display. Invalid input is shown as is.
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf []byte
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return string(raw)
	}
	buf, err := json.MarshalIndent(probe, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(buf)
}
