package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBrevoBaseURL = "https://api.brevo.com"

// BrevoMailer sends transactional email through the Brevo HTTPS API.
type BrevoMailer struct {
	apiKey      string
	senderName  string
	senderEmail string
	client      *http.Client
	baseURL     string
}

// NewBrevoMailer builds a Brevo API client.
func NewBrevoMailer(apiKey, senderName, senderEmail string) (*BrevoMailer, error) {
	if apiKey == "" {
		return nil, errors.New("BREVO_API_KEY not set")
	}
	return &BrevoMailer{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBrevoBaseURL,
	}, nil
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	TextContent string       `json:"textContent"`
}

// Send performs a single POST to the Brevo transactional email endpoint.
func (m *BrevoMailer) Send(ctx context.Context, to, subject, body string) error {
	payload := brevoSendRequest{
		Sender:      brevoParty{Name: m.senderName, Email: m.senderEmail},
		To:          []brevoParty{{Email: to}},
		Subject:     subject,
		TextContent: body,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal brevo request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v3/smtp/email", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("build brevo request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo api status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
