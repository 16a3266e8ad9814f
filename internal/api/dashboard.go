// ABOUTME: Date-ranged dashboard summary call
// ABOUTME: from/to are ISO dates (YYYY-MM-DD) interpreted by the backend

package api

import (
	"context"
	"net/url"
)

// GetDashboardSummary fetches analytics for the inclusive [from, to] window.
func (c *Client) GetDashboardSummary(ctx context.Context, from, to string) (*DashboardSummary, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var out DashboardSummary
	if err := c.Get(ctx, "/diet-app/dashboard/summary?"+query.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
