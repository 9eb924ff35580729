package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fontquiz/internal/config"
	"fontquiz/internal/model"

	"go.uber.org/zap"
)

// LeadSink receives captured leads and contact messages
type LeadSink interface {
	Name() string
	SendLead(ctx context.Context, lead *model.Lead) error
	SendContact(ctx context.Context, msg *model.ContactMessage) error
}

// CRMClient posts leads to an external CRM as url-encoded forms
type CRMClient struct {
	endpoint   string
	apiKey     string
	source     string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

// NewCRMClient creates a CRM client from config
func NewCRMClient(cfg *config.CRMConfig, logger *zap.Logger) *CRMClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CRMClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		source:   cfg.Source,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
		logger:     logger.Named("crm"),
	}
}

func (c *CRMClient) Name() string { return "crm" }

// SendLead posts one lead event
func (c *CRMClient) SendLead(ctx context.Context, lead *model.Lead) error {
	form := url.Values{}
	form.Set("type", "lead")
	form.Set("source", c.source)
	form.Set("event", string(lead.Event))
	form.Set("email", lead.Email)
	form.Set("session_id", lead.SessionID)
	form.Set("captured_at", lead.CapturedAt.UTC().Format(time.RFC3339))
	if lead.Results != nil {
		rec := lead.Results.Recommendation
		form.Set("style", string(rec.Style))
		form.Set("style_label", rec.StyleLabel)
		form.Set("primary_font", rec.Primary.Name)
		form.Set("secondary_font", rec.Secondary.Name)
		form.Set("tertiary_font", rec.Tertiary.Name)
		for _, t := range model.AllTraits {
			form.Set("trait_"+string(t), fmt.Sprint(lead.Results.Display.Get(t)))
		}
	}
	return c.post(ctx, form)
}

// SendContact posts one contact-form message
func (c *CRMClient) SendContact(ctx context.Context, msg *model.ContactMessage) error {
	form := url.Values{}
	form.Set("type", "contact")
	form.Set("source", c.source)
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("message", msg.Message)
	if msg.SessionID != "" {
		form.Set("session_id", msg.SessionID)
	}
	return c.post(ctx, form)
}

// post sends the form, retrying transport errors, 429 and 5xx responses
func (c *CRMClient) post(ctx context.Context, form url.Values) error {
	body := form.Encode()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(math.Pow(2, float64(attempt-1))) * c.backoff
			c.logger.Debug("retrying CRM request", zap.Int("attempt", attempt+1), zap.Duration("backoff", wait))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			continue
		}
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("CRM returned %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("CRM error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
