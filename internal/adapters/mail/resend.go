// Package mail implements the Resend transport: outbound delivery and
// retrieval of inbound message content (the webhook delivers metadata
// only, the body has to be fetched back).
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

const (
	resendBaseURL = "https://api.resend.com"
	resendTimeout = 15 * time.Second
)

// ResendClient implements domain.MailSender and domain.MailFetcher.
type ResendClient struct {
	apiKey  string
	from    string
	replyTo string
	baseURL string
	http    *http.Client
}

func NewResendClient(apiKey, from, replyTo string) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}

	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		replyTo: replyTo,
		baseURL: resendBaseURL,
		http:    &http.Client{Timeout: resendTimeout},
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send implements domain.MailSender.
func (c *ResendClient) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		ReplyTo: c.replyTo,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("encoding send request: %w", err)
	}

	if _, err := c.do(ctx, http.MethodPost, "/emails", bytes.NewReader(body)); err != nil {
		return err
	}
	return nil
}

type inboundResponse struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// FetchBody implements domain.MailFetcher.
func (c *ResendClient) FetchBody(ctx context.Context, id domain.MessageID) (domain.InboundContent, error) {
	raw, err := c.do(ctx, http.MethodGet, "/emails/receiving/"+string(id), nil)
	if err != nil {
		return domain.InboundContent{}, err
	}

	var parsed inboundResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.InboundContent{}, fmt.Errorf("decoding inbound email %s: %w", id, err)
	}

	return domain.InboundContent{Text: parsed.Text, HTML: parsed.HTML}, nil
}

func (c *ResendClient) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling resend: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading resend response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("resend %s %s returned %d: %s", method, path, res.StatusCode, raw)
	}

	return raw, nil
}
