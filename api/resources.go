package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// SearchRequest is the search body
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SummarizeRequest asks for a summary of a resource or of free text
type SummarizeRequest struct {
	ResourceID string `json:"resourceId,omitempty"`
	Text       string `json:"text,omitempty"`
}

// ChatRequest is one chat turn
type ChatRequest struct {
	Message    string `json:"message"`
	ResourceID string `json:"resourceId,omitempty"`
}

// ContactRequest is the contact form body
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c *Client) Search(ctx context.Context, req SearchRequest) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodPost, EndpointSearch, req)
}

func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodPost, EndpointSummarize, req)
}

// Summary fetches a previously generated summary
func (c *Client) Summary(ctx context.Context, id string) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodGet, SummarizeByID(id), nil)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodPost, EndpointChat, req)
}

// Cards fetches the study cards of a resource
func (c *Client) Cards(ctx context.Context, id string) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodGet, Cards(id), nil)
}

func (c *Client) Stats(ctx context.Context) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodGet, EndpointStats, nil)
}

// Resources lists the signed-in user's saved resources. query is appended when non-empty.
func (c *Client) Resources(ctx context.Context, query url.Values) (json.RawMessage, error) {
	path := EndpointResources
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.raw(ctx, http.MethodGet, path, nil)
}

func (c *Client) Resource(ctx context.Context, id string) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodGet, ResourceByID(id), nil)
}

// SaveResource adds a resource to the signed-in user's list
func (c *Client) SaveResource(ctx context.Context, resource json.RawMessage) (json.RawMessage, error) {
	return c.raw(ctx, http.MethodPost, EndpointResources, resource)
}

func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, ResourceByID(id), nil, nil)
}

func (c *Client) Contact(ctx context.Context, req ContactRequest) error {
	return c.Do(ctx, http.MethodPost, EndpointContact, req, nil)
}

func (c *Client) raw(ctx context.Context, method, path string, in any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.Do(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
