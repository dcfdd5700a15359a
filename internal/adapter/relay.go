// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
)

type relayAdapter struct {
	client   *resty.Client
	endpoint string

	logger *logger.Logger
}

// NewRelayAdapter constructs the HTTP implementation of [RelayInvoker]
// pointed at the single fixed relay endpoint from cfg. The endpoint URL is
// normalised and validated; the request timeout defaults to 30 seconds when
// unset.
func NewRelayAdapter(cfg config.Relay, log *logger.Logger) (RelayInvoker, error) {
	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid relay endpoint: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &relayAdapter{client: cli, endpoint: endpoint, logger: log}, nil
}

// Invoke implements [RelayInvoker]. One POST, no retries, body read as raw
// text whatever the status code.
func (r *relayAdapter) Invoke(ctx context.Context, payload any) (RelayResult, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Trace-Id", uuid.NewString()).
		SetBody(payload).
		Post(r.endpoint)
	if err != nil {
		return RelayResult{}, fmt.Errorf("relay request: %w", err)
	}

	return RelayResult{
		Text: string(resp.Body()),
		OK:   resp.IsSuccess(),
	}, nil
}

// Fire implements [RelayInvoker]. Errors are logged and swallowed so that a
// dead relay never disrupts the interaction that triggered the call.
func (r *relayAdapter) Fire(ctx context.Context, payload any) {
	if _, err := r.Invoke(ctx, payload); err != nil {
		r.logger.Debug().Err(err).Msg("silent trigger failed")
	}
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty endpoint")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint must include host and scheme")
	}

	return u.String(), nil
}
