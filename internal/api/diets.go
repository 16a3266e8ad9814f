// ABOUTME: Typed diet CRUD and generation calls against /diet-app/diets
// ABOUTME: Handles the backend's several list envelope shapes leniently

package api

import (
	"context"
	"encoding/json"
)

// ListDiets returns every diet visible to the current identity. The backend
// has shipped the list under several envelopes over time; all are accepted.
func (c *Client) ListDiets(ctx context.Context) ([]Diet, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, "/diet-app/diets", &raw); err != nil {
		return nil, err
	}
	return extractDietList(raw), nil
}

// extractDietList unwraps a diet list response: a bare array, or an object
// keyed data, items, or diets, in that priority order.
func extractDietList(raw json.RawMessage) []Diet {
	if len(raw) == 0 {
		return nil
	}

	var list []Diet
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var envelope struct {
		Data  []Diet `json:"data"`
		Items []Diet `json:"items"`
		Diets []Diet `json:"diets"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}

	switch {
	case envelope.Data != nil:
		return envelope.Data
	case envelope.Items != nil:
		return envelope.Items
	default:
		return envelope.Diets
	}
}

// GenerateDiet asks the backend to produce a new AI plan from the intake.
func (c *Client) GenerateDiet(ctx context.Context, req GenerateRequest) (*Diet, error) {
	var out Diet
	if err := c.Post(ctx, "/diet-app/diets/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDiet fetches a single diet by id.
func (c *Client) GetDiet(ctx context.Context, id string) (*Diet, error) {
	var out Diet
	if err := c.Get(ctx, "/diet-app/diets/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDiet replaces the editable fields of a diet and returns the
// updated record.
func (c *Client) UpdateDiet(ctx context.Context, id string, req UpdateRequest) (*Diet, error) {
	var out Diet
	if err := c.Put(ctx, "/diet-app/diets/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDiet removes a diet and its derived assets (PDFs, share links).
func (c *Client) DeleteDiet(ctx context.Context, id string) error {
	return c.Delete(ctx, "/diet-app/diets/"+id, nil)
}

// GeneratePDF renders a diet to PDF on the backend and returns the file URL.
func (c *Client) GeneratePDF(ctx context.Context, id string) (*PDFResponse, error) {
	var out PDFResponse
	if err := c.Post(ctx, "/diet-app/diets/"+id+"/pdf", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShareLink mints a public share URL for a diet.
func (c *Client) CreateShareLink(ctx context.Context, id string) (*ShareResponse, error) {
	var out ShareResponse
	if err := c.Post(ctx, "/diet-app/diets/"+id+"/share", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
