package gateway

import (
	"bytes"
	"chatbot/domain"
	"chatbot/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	sendTextPath       = "/api/sendText"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBody       = 512
)

type sendTextRequest struct {
	Session string `json:"session"`
	ChatID  string `json:"chatId"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

type sendTextResponse struct {
	ID string `json:"id"`
}

// Client is the REST send side of the gateway.
type Client struct {
	log          *slog.Logger
	http         *http.Client
	baseURL      string
	session      string
	apiKey       string
	capabilities domain.Capabilities
}

func NewClient(log *slog.Logger, httpClient *http.Client, baseURL, session, apiKey string, contextualReply bool) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	caps := domain.NewCapabilities(domain.CapabilitySendMessage)
	if contextualReply {
		caps[domain.CapabilityContextualReply] = struct{}{}
	}
	return &Client{
		log:          log,
		http:         httpClient,
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		session:      session,
		apiKey:       strings.TrimSpace(apiKey),
		capabilities: caps,
	}
}

func (c *Client) Capabilities() domain.Capabilities {
	return c.capabilities
}

// SendMessage sends a plain text and returns the gateway id of the sent message.
func (c *Client) SendMessage(ctx context.Context, to, text string) (string, error) {
	return c.sendText(ctx, sendTextRequest{Session: c.session, ChatID: to, Text: text})
}

// SendReply sends a text quoting messageID.
func (c *Client) SendReply(ctx context.Context, to, messageID, text string) (string, error) {
	if !c.capabilities.Has(domain.CapabilityContextualReply) {
		return "", errors.ErrUnsupportedCapability
	}
	return c.sendText(ctx, sendTextRequest{Session: c.session, ChatID: to, Text: text, ReplyTo: messageID})
}

func (c *Client) sendText(ctx context.Context, payload sendTextRequest) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendTextPath, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send text to %s: %w", payload.ChatID, err)
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("read gateway response: %w", readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return "", fmt.Errorf("%w: http %d: %s", errors.ErrGatewayRejected, resp.StatusCode, snippet)
	}

	var out sendTextResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			c.log.Debug("Unexpected sendText response", "err", err)
		}
	}
	c.log.Debug("Text sent", "chat_id", payload.ChatID, "gateway_id", out.ID, "reply_to", payload.ReplyTo)
	return out.ID, nil
}
