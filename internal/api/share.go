// ABOUTME: Unauthenticated public read of a shared diet plan
// ABOUTME: The share token is opaque and minted by the backend

package api

import "context"

// GetSharedDiet fetches a diet through its public share token. The call
// still carries the API key but no viewer identity is required.
func (c *Client) GetSharedDiet(ctx context.Context, token string) (*Diet, error) {
	var out Diet
	if err := c.Get(ctx, "/diet-app/public/share/"+token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
