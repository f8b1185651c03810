// Package payment talks to the external payment gateway. The gateway owns
// the truth about whether an order was paid, this package only asks and
// reports back raw provider statuses.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/storekit/storefront-service/internal/config"
)

// Status is the provider's verdict as returned by the verify endpoint.
// Anything outside the known constants is treated as a decline by callers.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
)

type Gateway interface {
	// Verify asks the gateway for the authoritative status of orderID.
	Verify(ctx context.Context, orderID string) (Status, error)
}

type HTTPGateway struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[Status]
}

func NewHTTPGateway(logger *slog.Logger, cfg config.Gateway) *HTTPGateway {
	return &HTTPGateway{
		logger:  logger.With(slog.String("component", "payment_gateway")),
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[Status](gobreaker.Settings{
			Name:    "payment-gateway",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type verifyResponse struct {
	Data struct {
		Status Status `json:"status"`
	} `json:"data"`
}

func (g *HTTPGateway) Verify(ctx context.Context, orderID string) (Status, error) {
	status, err := g.breaker.Execute(func() (Status, error) {
		return g.verify(ctx, orderID)
	})
	if err != nil {
		verificationErrors.Inc()
		return status, err
	}
	verificationsTotal.WithLabelValues(string(status)).Inc()
	return status, nil
}

func (g *HTTPGateway) verify(ctx context.Context, orderID string) (Status, error) {
	endpoint := fmt.Sprintf("%s/verify/%s", g.baseURL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build verify request: %w", err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("verify request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway returned %d", res.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode verify response: %w", err)
	}

	g.logger.Debug("verification result",
		slog.String("order_id", orderID), slog.String("status", string(body.Data.Status)))
	return body.Data.Status, nil
}
