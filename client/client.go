// Package client is a thin wrapper around the PulsePoint HTTP API. It
// mirrors the four endpoints one to one, unwraps the response envelope
// and hands failures back to the caller. No retry, no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PrashantKhatiwada/pulsePoint/models"
	"github.com/PrashantKhatiwada/pulsePoint/utils"
)

// Client calls the PulsePoint API at a configurable base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an API client. baseURL points at the API root, for
// example "http://localhost:5555/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// ListOptions are the optional filters of the list endpoint. Zero values
// mean "no filter".
type ListOptions struct {
	Category models.Category
	Status   models.Status
	Days     int
}

// FetchReports lists reports, newest first.
func (c *Client) FetchReports(ctx context.Context, opts ListOptions) ([]models.Report, error) {
	params := url.Values{}
	if opts.Category != "" {
		params.Set("category", string(opts.Category))
	}
	if opts.Status != "" {
		params.Set("status", string(opts.Status))
	}
	if opts.Days > 0 {
		params.Set("days", strconv.Itoa(opts.Days))
	}

	endpoint := c.baseURL + "/reports"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reports []models.Report
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport submits a new report and returns the created record.
func (c *Client) CreateReport(ctx context.Context, input models.ReportCreate) (models.Report, error) {
	var report models.Report
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/report", input, &report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// GetReportByID retrieves a single report.
func (c *Client) GetReportByID(ctx context.Context, id string) (models.Report, error) {
	var report models.Report
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/report/"+url.PathEscape(id), nil, &report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// UpdateReportStatus changes a report's status and returns the updated record.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, status models.Status) (models.Report, error) {
	var report models.Report
	body := models.ReportStatusUpdate{Status: status}
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/report/"+url.PathEscape(id), body, &report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// do issues the request, decodes the envelope and unwraps its data field
// into out.
func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	var envelope utils.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && envelope.Data != nil {
		// Data arrives as decoded JSON; round-trip it into the caller's type.
		raw, err := json.Marshal(envelope.Data)
		if err != nil {
			return fmt.Errorf("re-encode data: %w", err)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
