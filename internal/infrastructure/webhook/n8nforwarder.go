// Package webhook implements the outbound call to the n8n automation
// webhook. The forwarder is strictly best-effort: every failure mode
// (marshalling, transport, timeout, non-2xx status) collapses to a
// false outcome and is logged, never returned as an error.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"inkwell/internal/application/ticket/dto"
	"inkwell/internal/application/ticket/usecases"
	"inkwell/internal/shared/config"
	"inkwell/internal/shared/logger"
)

const (
	// Default outbound call timeout when none is configured.
	defaultTimeout = 10 * time.Second
	// Maximum response body size drained before closing (64KB).
	maxResponseDrainSize = 64 << 10
)

// N8NForwarder posts ticket payloads to an n8n webhook endpoint.
type N8NForwarder struct {
	httpClient *http.Client
	url        string
	logger     logger.Interface
}

// NewN8NForwarder creates a forwarder bound to the configured webhook URL.
func NewN8NForwarder(cfg *config.WebhookConfig, logger logger.Interface) *N8NForwarder {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &N8NForwarder{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:    cfg.URL,
		logger: logger,
	}
}

// Ensure N8NForwarder implements NotificationForwarder
var _ usecases.NotificationForwarder = (*N8NForwarder)(nil)

// Forward posts the payload to the webhook and reports whether the
// remote accepted it. It never returns an error.
func (f *N8NForwarder) Forward(ctx context.Context, payload dto.TicketPayload) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		f.logger.Errorw("failed to marshal webhook payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		f.logger.Errorw("failed to create webhook request", "url", f.url, "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Warnw("webhook call failed", "url", f.url, "error", err)
		return false
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseDrainSize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warnw("webhook rejected payload",
			"url", f.url,
			"status_code", resp.StatusCode,
		)
		return false
	}

	return true
}
