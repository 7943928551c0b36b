// Package boardclient wraps the bouquet board HTTP API behind typed calls.
// Failures come back as *APIError carrying a display-ready Spanish message,
// preferring the server's message field over the per-operation fallback.
package boardclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
)

const defaultTimeout = 15 * time.Second

type Recipient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Offering struct {
	ID          int64     `json:"id"`
	RecipientID string    `json:"recipientId"`
	Type        string    `json:"type"`
	UserName    string    `json:"userName"`
	ImageURL    string    `json:"imageUrl"`
	Comment     string    `json:"comment"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOffering is the payload for creating an offering. Timestamp is the
// RFC3339 moment the act was offered, chosen by the contributor.
type NewOffering struct {
	Type      string `json:"type"`
	UserName  string `json:"userName"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Comment   string `json:"comment,omitempty"`
	Timestamp string `json:"timestamp"`
}

// APIError is the single error type every operation returns. StatusCode is
// zero when the request never reached the server.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLoadingObserver registers a callback fired with true when the first
// in-flight request starts and false when the last one finishes.
func WithLoadingObserver(fn func(bool)) Option {
	return func(c *Client) { c.onLoading = fn }
}

type Client struct {
	baseURL   string
	http      *http.Client
	onLoading func(bool)
	inflight  atomic.Int32
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateRecipient(ctx context.Context, name string) (*Recipient, error) {
	var created struct {
		Message   string    `json:"message"`
		Recipient Recipient `json:"recipient"`
	}
	err := c.do(ctx, http.MethodPost, "/api/recipients",
		map[string]string{"name": name}, &created,
		"create recipient", "Error al crear el destinatario")
	if err != nil {
		return nil, err
	}
	return &created.Recipient, nil
}

func (c *Client) GetRecipient(ctx context.Context, id string) (*Recipient, error) {
	var rec Recipient
	err := c.do(ctx, http.MethodGet, "/api/recipients/"+url.PathEscape(id),
		nil, &rec,
		"get recipient", "Error al cargar el destinatario")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) CreateOffering(ctx context.Context, recipientID string, offering NewOffering) (*Offering, error) {
	var created struct {
		Message  string   `json:"message"`
		Offering Offering `json:"offering"`
	}
	err := c.do(ctx, http.MethodPost, "/api/recipients/"+url.PathEscape(recipientID)+"/offerings",
		offering, &created,
		"create offering", "Error al guardar la ofrenda")
	if err != nil {
		return nil, err
	}
	return &created.Offering, nil
}

func (c *Client) ListOfferings(ctx context.Context, recipientID string) ([]Offering, error) {
	var items []Offering
	err := c.do(ctx, http.MethodGet, "/api/recipients/"+url.PathEscape(recipientID)+"/offerings",
		nil, &items,
		"list offerings", "Error al cargar las ofrendas")
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Offering{}
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, op, fallback string) error {
	c.beginLoad()
	defer c.endLoad()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Message: fallback, Err: err}
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Op: op, Message: fallback, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Op: op, Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(resp, fallback),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Op: op, StatusCode: resp.StatusCode, Message: fallback, Err: err}
		}
	}
	return nil
}

// serverMessage prefers the body's message field; anything unreadable falls
// back to the operation default.
func serverMessage(resp *http.Response, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}

func (c *Client) beginLoad() {
	if c.inflight.Add(1) == 1 && c.onLoading != nil {
		c.onLoading(true)
	}
}

func (c *Client) endLoad() {
	if c.inflight.Add(-1) == 0 && c.onLoading != nil {
		c.onLoading(false)
	}
}
