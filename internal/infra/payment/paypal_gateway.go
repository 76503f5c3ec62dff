package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.PaymentGateway = (*PayPalGateway)(nil)

// PayPalGateway implements adapter.PaymentGateway using direct HTTP calls
// against the PayPal Orders v2 API.
type PayPalGateway struct {
	clientID  string
	secretKey string
	brandName string
	sandbox   bool
	baseURL   string
	client    *http.Client
	log       *zerolog.Logger
}

// NewPayPalGateway creates a direct PayPal gateway. Missing credentials are
// a configuration error and surface immediately.
func NewPayPalGateway(clientID, secretKey, brandName string, sandbox bool, logger *zerolog.Logger) (*PayPalGateway, error) {
	if clientID == "" || secretKey == "" {
		return nil, errors.New("paypal credentials not configured")
	}
	baseURL := "https://api-m.paypal.com"
	if sandbox {
		baseURL = "https://api-m.sandbox.paypal.com"
	}
	gwLog := logger.With().Str("component", "PayPalGateway").Logger()
	return &PayPalGateway{
		clientID:  clientID,
		secretKey: secretKey,
		brandName: brandName,
		sandbox:   sandbox,
		baseURL:   baseURL,
		client:    &http.Client{},
		log:       &gwLog,
	}, nil
}

func (g *PayPalGateway) Name() string { return "paypal" }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type orderLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type orderResponse struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	Links         []orderLink `json:"links"`
	PurchaseUnits []struct {
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
	} `json:"purchase_units"`
}

// accessToken performs the client-credentials grant. Tokens are short-lived
// and fetched fresh for every operation; there is no local token cache.
func (g *PayPalGateway) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(g.clientID, g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("paypal token exchange failed")
		return "", fmt.Errorf("paypal token exchange failed: status %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("failed to unmarshal token response: %w, body: %s", err, string(body))
	}
	if tok.AccessToken == "" {
		return "", errors.New("paypal token response missing access_token")
	}
	return tok.AccessToken, nil
}

// CreateOrder implements adapter.PaymentGateway.CreateOrder.
func (g *PayPalGateway) CreateOrder(ctx context.Context, req adapter.OrderRequest) (*model.Order, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": req.Currency,
					"value":         req.Amount,
				},
				"description": req.Description,
			},
		},
		"application_context": map[string]string{
			"return_url":  req.ReturnURL,
			"cancel_url":  req.CancelURL,
			"brand_name":  g.brandName,
			"user_action": "PAY_NOW",
		},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/checkout/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("paypal order creation failed")
		return nil, fmt.Errorf("paypal order creation failed: status %d", resp.StatusCode)
	}

	var or orderResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order response: %w, body: %s", err, string(body))
	}

	// The approve link may be absent from a 2xx response; the caller must
	// check ApprovalURL before redirecting.
	var approvalURL string
	for _, l := range or.Links {
		if l.Rel == "approve" {
			approvalURL = l.Href
			break
		}
	}

	g.log.Debug().Str("order_id", or.ID).Str("status", or.Status).Msg("created paypal order")
	return &model.Order{
		ID:          or.ID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      model.ParseOrderStatus(or.Status),
		ApprovalURL: approvalURL,
	}, nil
}

// GetOrder implements adapter.PaymentGateway.GetOrder.
func (g *PayPalGateway) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, errors.New("order id is empty")
	}
	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v2/checkout/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create order lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send order lookup request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order lookup response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Error().Int("status", resp.StatusCode).Str("order_id", orderID).Str("body", string(body)).Msg("paypal order lookup failed")
		return nil, fmt.Errorf("paypal order lookup failed: status %d", resp.StatusCode)
	}

	var or orderResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order lookup response: %w, body: %s", err, string(body))
	}

	o := &model.Order{
		ID:       or.ID,
		Status:   model.ParseOrderStatus(or.Status),
		Currency: "USD",
	}
	if len(or.PurchaseUnits) > 0 {
		o.Amount = or.PurchaseUnits[0].Amount.Value
		if c := or.PurchaseUnits[0].Amount.CurrencyCode; c != "" {
			o.Currency = c
		}
	}
	return o, nil
}
