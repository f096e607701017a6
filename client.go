package freeconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client gives typed access to the marketplace resources. Every request
// passes through a BearerTransport, so calls made with an active session
// carry the bearer token automatically.
type Client struct {
	baseURL string
	doer    Doer
	logger  Logger

	Projects      *ProjectsService
	Tasks         *TasksService
	Proposals     *ProposalsService
	Users         *UsersService
	Reviews       *ReviewsService
	Transactions  *TransactionsService
	Skills        *SkillsService
	Notifications *NotificationsService
	Invoices      *InvoicesService
	Admin         *AdminService
}

// ClientOption customizes Client construction.
type ClientOption func(*clientConfig)

type clientConfig struct {
	transport http.RoundTripper
	timeout   time.Duration
	logger    Logger
}

// WithTransport replaces the base RoundTripper under the BearerTransport.
// Tests use it to splice in an in-process backend.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) {
		if rt != nil {
			c.transport = rt
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithClientLogger replaces the default stdout logger.
func WithClientLogger(logger Logger) ClientOption {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient returns a Client rooted at baseURL whose requests are augmented
// from store.
func NewClient(baseURL string, store CredentialStore, opts ...ClientOption) *Client {
	cfg := &clientConfig{
		timeout: 30 * time.Second,
		logger:  defLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer: &http.Client{
			Transport: NewBearerTransport(store, cfg.transport),
			Timeout:   cfg.timeout,
		},
		logger: cfg.logger,
	}

	c.Projects = &ProjectsService{client: c}
	c.Tasks = &TasksService{client: c}
	c.Proposals = &ProposalsService{client: c}
	c.Users = &UsersService{client: c}
	c.Reviews = &ReviewsService{client: c}
	c.Transactions = &TransactionsService{client: c}
	c.Skills = &SkillsService{client: c}
	c.Notifications = &NotificationsService{client: c}
	c.Invoices = &InvoicesService{client: c}
	c.Admin = &AdminService{client: c}

	return c
}

// do executes one JSON round trip. Non-2xx responses surface the backend's
// {"error"} message as a backendError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return transportError(err, "cannot encode request payload")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return transportError(err, "cannot build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("%s %s", method, path)

	res, err := c.doer.Do(req)
	if err != nil {
		return transportError(err, fmt.Sprintf("%s %s failed", method, path))
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return backendError(backendMessage(res.Body, res.StatusCode), res.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return badResponseError(fmt.Sprintf("cannot decode %s %s response: %s", method, path, err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) put(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
