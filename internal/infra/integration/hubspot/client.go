package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.hubapi.com"

	contactsPath = "/crm/v3/objects/contacts"
	searchPath   = contactsPath + "/search"

	// HubSpot error bodies are small; anything past this is dropped.
	maxErrorBody = 64 << 10
)

type Client struct {
	apiToken string
	baseURL  string
	http     *http.Client
}

// NewClient builds a CRM v3 client. A zero timeout leaves requests bounded
// only by the caller's context.
func NewClient(apiToken, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiToken: apiToken,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a token was supplied.
func (c *Client) Configured() bool {
	return c.apiToken != ""
}

// SearchContactsByEmail runs an exact-match search on the email property.
func (c *Client) SearchContactsByEmail(ctx context.Context, email string) (*SearchResponse, error) {
	body := SearchRequest{
		FilterGroups: []FilterGroup{
			{
				Filters: []Filter{
					{PropertyName: "email", Operator: OperatorEQ, Value: email},
				},
			},
		},
	}

	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, searchPath, body, &result); err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return &result, nil
}

// FindContactIDByEmail returns the id of the first search hit.
func (c *Client) FindContactIDByEmail(ctx context.Context, email string) (string, bool, error) {
	result, err := c.SearchContactsByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if result.Total == nil {
		return "", false, ErrMalformedSearch
	}
	if *result.Total == 0 {
		return "", false, nil
	}
	if len(result.Results) == 0 || result.Results[0].ID == "" {
		return "", false, fmt.Errorf("%w: total %d but no result id", ErrMalformedSearch, *result.Total)
	}
	return result.Results[0].ID, true, nil
}

// CreateContact creates a contact and returns the id HubSpot assigned.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (string, error) {
	var created Contact
	if err := c.do(ctx, http.MethodPost, contactsPath, ContactInput{Properties: properties}, &created); err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}
	return created.ID, nil
}

// UpdateContact patches only the given properties of an existing contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]string) error {
	path := contactsPath + "/" + url.PathEscape(contactID)
	if err := c.do(ctx, http.MethodPatch, path, ContactInput{Properties: properties}, nil); err != nil {
		return fmt.Errorf("update contact %s: %w", contactID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.apiToken == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
