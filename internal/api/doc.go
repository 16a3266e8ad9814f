// Package api implements the HTTP client for the remote Carenexa diet backend.
//
// # Overview
//
// Every network call the console makes flows through one request core, which
// guarantees consistent base-URL resolution, consistent identity and API-key
// headers, and one error shape for every failure.
//
// # Request Handling
//
// The core operation:
//
//   - Joins the backend base URL and the server-relative path with exactly
//     one slash between them.
//   - Attaches the shared API-key header to every request.
//   - Attaches an x-user-id header from the active session unless the
//     caller supplied one explicitly.
//   - Serializes a JSON body (and sets Content-Type) when one is given;
//     raw bodies pass through untouched.
//   - Disables response caching and sends no credentials.
//
// # Errors
//
// All failures surface as *Error. Backend failures (non-2xx) carry the
// backend's message, the HTTP status, and the parsed response body as
// details. Transport failures carry status 0 and wrap the underlying
// error, so errors.Is still reaches context.Canceled and friends.
//
// # Usage
//
//	client := api.New(cfg.Backend.BaseURL, cfg.Backend.APIKey, sessions)
//	diets, err := client.ListDiets(ctx)
package api
