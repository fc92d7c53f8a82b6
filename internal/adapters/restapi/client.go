// Package restapi is the access layer over the remote employee store.
// Each method issues one HTTP request, decodes the JSON response, and maps
// every failure onto a *domain.OpError. There are no retries and no caching.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/csg33k/employee-manager/internal/domain"
)

// DefaultBaseURL is the hosted employee resource.
const DefaultBaseURL = "https://67d7ece99d5e3a10152c999f.mockapi.io/employeedetails/email"

const contentTypeJSON = "application/json"

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

// New returns a Client for baseURL. A nil httpClient means a client with no
// timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		Logger:  slog.Default(),
	}
}

func (c *Client) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.call(ctx, domain.OpList, http.MethodGet, c.BaseURL, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Employee{}
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, payload domain.EmployeeFormData) (domain.Employee, error) {
	var out domain.Employee
	err := c.call(ctx, domain.OpCreate, http.MethodPost, c.BaseURL, payload, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id string, payload domain.EmployeeFormData) (domain.Employee, error) {
	var out domain.Employee
	err := c.call(ctx, domain.OpUpdate, http.MethodPut, c.itemURL(id), payload, &out)
	return out, err
}

// Delete removes the record. The response body is read and discarded.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.call(ctx, domain.OpDelete, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id string) string {
	return c.BaseURL + "/" + url.PathEscape(id)
}

// call performs one request for op. Any error that is not already an
// *domain.OpError is reported as the op's unexpected error.
func (c *Client) call(ctx context.Context, op domain.Op, method, target string, in, out any) error {
	return domain.AsOpError(op, c.do(ctx, op, method, target, in, out))
}

func (c *Client) do(ctx context.Context, op domain.Op, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if method != http.MethodDelete {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.Logger.Debug("employee api", "op", op, "method", method, "url", target, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return domain.StatusError(op, resp.StatusCode)
	}

	if out == nil {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
