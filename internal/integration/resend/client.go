package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrUnauthorized   = errors.New("resend: unauthorized")
	ErrBadRequest     = errors.New("resend: bad request")
	ErrDeliveryFailed = errors.New("resend: delivery failed")
)

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

type Client interface {
	Send(ctx context.Context, msg Message) error
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *HTTPClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    trimmed,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: httpClient,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *HTTPClient) Send(ctx context.Context, msg Message) error {
	if c.apiKey == "" {
		return ErrUnauthorized
	}
	if msg.From == "" || len(msg.To) == 0 {
		return ErrBadRequest
	}
	payload := sendRequest{From: msg.From, To: msg.To, Subject: msg.Subject, HTML: msg.HTML}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read email response: %w", err)
	}
	return mapSendError(resp.StatusCode, payloadBytes)
}

func mapSendError(status int, payload []byte) error {
	var parsed errorResponse
	message := ""
	if err := json.Unmarshal(payload, &parsed); err == nil {
		message = parsed.Message
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, message)
	}
}
