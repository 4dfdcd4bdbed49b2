package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bakerydir/pkg/logger"
)

// ErrNotConfigured is returned when no webhook URL is configured.
var ErrNotConfigured = errors.New("n8n webhook URL not configured")

const (
	defaultTimeout = 10 * time.Second

	// fallbackSheetURL is returned on degraded triggers so the client UI
	// still has something to link to.
	fallbackSheetURL = "https://docs.google.com/spreadsheets/d/your-sheet-id"
)

// TriggerRequest describes a lead-scraping run.
type TriggerRequest struct {
	BusinessType string
	City         string
	Country      string
	MaxLeads     int
	UserEmail    string
}

// TriggerResult reports the outcome of a trigger. Degraded is set when the
// workflow was unreachable and the sheet URL is the placeholder fallback:
// the request still succeeds, but the two outcomes are distinguishable.
type TriggerResult struct {
	SheetURL string
	Degraded bool
}

// webhookPayload is the wire shape the n8n workflow expects.
type webhookPayload struct {
	City         string `json:"city"`
	Country      string `json:"country"`
	BusinessType string `json:"businessType"`
	MaxLeads     int    `json:"max_leads"`
	UserEmail    string `json:"userEmail"`
}

// Client triggers the external lead-scraping workflow over its webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a scraping client. An empty webhookURL is allowed at
// construction; Trigger reports ErrNotConfigured.
func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Trigger fires the workflow. The integration is non-critical: any transport
// or workflow failure degrades to a mocked result instead of failing.
func (c *Client) Trigger(ctx context.Context, req TriggerRequest) (*TriggerResult, error) {
	if c.webhookURL == "" {
		return nil, ErrNotConfigured
	}

	maxLeads := req.MaxLeads
	if maxLeads <= 0 {
		maxLeads = 10
	}

	payload, err := json.Marshal(webhookPayload{
		City:         req.City,
		Country:      req.Country,
		BusinessType: req.BusinessType,
		MaxLeads:     maxLeads,
		UserEmail:    req.UserEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Scraping workflow unreachable, degrading")
		return &TriggerResult{SheetURL: fallbackSheetURL, Degraded: true}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx).Int("status", resp.StatusCode).Msg("Scraping workflow rejected trigger, degrading")
		return &TriggerResult{SheetURL: fallbackSheetURL, Degraded: true}, nil
	}

	var body struct {
		SheetURL string `json:"sheetUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.SheetURL == "" {
		return &TriggerResult{SheetURL: "https://docs.google.com/spreadsheets"}, nil
	}

	return &TriggerResult{SheetURL: body.SheetURL}, nil
}
