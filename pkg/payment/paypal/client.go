// Package paypal is a minimal client for the PayPal Orders v2 REST API.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mainalysis/domain-analyzer/pkg/config"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	requestTimeout = 30 * time.Second
)

// StatusCompleted is the terminal order status after a successful capture.
const StatusCompleted = "COMPLETED"

// Order is the subset of the PayPal order resource the service consumes.
type Order struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CapturedValue returns the USD value of the first capture on the order.
func (o *Order) CapturedValue() (decimal.Decimal, error) {
	for _, unit := range o.PurchaseUnits {
		for _, capture := range unit.Payments.Captures {
			return decimal.NewFromString(capture.Amount.Value)
		}
	}
	return decimal.Zero, fmt.Errorf("order %s has no captures", o.ID)
}

// CaptureID returns the id of the first capture on the order, falling back
// to the order id when the capture list is empty.
func (o *Order) CaptureID() string {
	for _, unit := range o.PurchaseUnits {
		for _, capture := range unit.Payments.Captures {
			return capture.ID
		}
	}
	return o.ID
}

// Client calls the PayPal Orders API using client-credentials OAuth.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	brandName    string
	returnURL    string
	cancelURL    string
}

// NewClient creates a PayPal client from config. Mode selects the sandbox or
// live API host.
func NewClient(cfg *config.PayPalConfig) *Client {
	baseURL := sandboxBaseURL
	if cfg.Mode == "live" {
		baseURL = liveBaseURL
	}

	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		brandName:    cfg.BrandName,
		returnURL:    cfg.ReturnURL,
		cancelURL:    cfg.CancelURL,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// accessToken fetches a client-credentials OAuth token. PayPal tokens are
// valid for hours; fetching per request keeps the client stateless, matching
// the low checkout volume this serves.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to unmarshal token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}
	return token.AccessToken, nil
}

// CreateOrder creates a CAPTURE-intent order for totalUSD. The account id
// travels in custom_id so the capture can be attributed without local state.
func (c *Client) CreateOrder(ctx context.Context, totalUSD decimal.Decimal, credits int64, accountID string) (*Order, error) {
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"amount": map[string]any{
					"currency_code": "USD",
					"value":         totalUSD.StringFixed(2),
				},
				"description": fmt.Sprintf("%d %s Credits", credits, c.brandName),
				"custom_id":   accountID,
			},
		},
		"application_context": map[string]any{
			"brand_name":   c.brandName,
			"landing_page": "NO_PREFERENCE",
			"user_action":  "PAY_NOW",
			"return_url":   c.returnURL,
			"cancel_url":   c.cancelURL,
		},
	}

	return c.post(ctx, "/v2/checkout/orders", payload)
}

// CaptureOrder captures an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	return c.post(ctx, fmt.Sprintf("/v2/checkout/orders/%s/capture", orderID), struct{}{})
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Order, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("paypal request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order response: %w", err)
	}
	return &order, nil
}
