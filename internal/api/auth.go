// ABOUTME: Login and signup calls against the backend's fixed auth routes
// ABOUTME: The backend validates credentials; the console only relays them

package api

import "context"

// Login authenticates against the backend. The caller is responsible for
// checking that the response carries a usable id before trusting it.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var out LoginResponse
	if err := c.Post(ctx, "login", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates an account. Callers typically follow up with Login using
// the same credentials.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.Post(ctx, "signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
