// Package notifyhook delivers marketplace notifications to an external
// endpoint as signed CloudEvents. Delivery is best-effort: callers log
// failures and never retry.
package notifyhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

const eventSource = "quick-admin/notification-engine"

// Client posts notification events to a webhook endpoint.
type Client struct {
	Endpoint   string
	Secret     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Event is one notification to deliver.
type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// Enabled reports whether a delivery endpoint is configured.
func (c Client) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// Publish wraps the event in a CloudEvents envelope and posts it.
func (c Client) Publish(ctx context.Context, event Event) error {
	body, err := BuildEventBody(event)
	if err != nil {
		return err
	}
	return c.publishBody(ctx, body)
}

// BuildEventBody renders the CloudEvents JSON payload for a notification.
func BuildEventBody(event Event) ([]byte, error) {
	if strings.TrimSpace(event.ID) == "" || strings.TrimSpace(event.Type) == "" {
		return nil, fmt.Errorf("event id and type are required")
	}

	ce := cloudevents.NewEvent()
	ce.SetID(event.ID)
	ce.SetType("marketplace.notification." + event.Type)
	ce.SetSource(eventSource)
	ce.SetSubject(event.OrderID)
	ce.SetTime(event.CreatedAt)
	if err := ce.SetData(cloudevents.ApplicationJSON, event); err != nil {
		return nil, fmt.Errorf("set event data: %w", err)
	}
	if err := ce.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	return json.Marshal(ce)
}

func (c Client) publishBody(ctx context.Context, body []byte) error {
	endpoint := strings.TrimSpace(c.Endpoint)
	secret := strings.TrimSpace(c.Secret)
	if endpoint == "" || secret == "" {
		return fmt.Errorf("endpoint/secret are required")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Webhook-Signature", sign(body, secret))
	req.Header.Set("Content-Type", "application/cloudevents+json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook rejected: status=%s body=%s", resp.Status, strings.TrimSpace(string(payload)))
	}
	return nil
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
