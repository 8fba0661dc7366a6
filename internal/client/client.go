// Package client implements the settings sync contract of the merchant UI:
// load the current document, edit it locally, save it in full. It is the
// reference implementation of the state machine the embedded settings page
// follows and backs the settings CLI commands.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/socioshare/socioshare/internal/settings"
)

// State of the local editing session.
type State int

// Session states. Loading until the first successful load, Clean while the
// local document equals the last confirmed server document, Dirty after any
// local edit until a save succeeds.
const (
	StateLoading State = iota
	StateClean
	StateDirty
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// DefaultTimeout applied to load and save calls when the caller's context
// carries no earlier deadline.
const DefaultTimeout = 10 * time.Second

var (
	// ErrShopEmpty is returned when the client was built without a shop.
	ErrShopEmpty = errors.New("shop cannot be empty")

	// ErrServerRejected is returned when the API answers with a non-2xx status.
	ErrServerRejected = errors.New("settings api rejected the request")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionToken attaches a bearer session token to every call.
func WithSessionToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// Client is one shop's editing session against the settings API. It is not
// safe for concurrent use; the UI it mirrors holds one edit set at a time.
type Client struct {
	baseURL string
	shop    string
	token   string
	http    *http.Client

	state State
	doc   settings.Document
}

// New creates a Client for one shop. The session starts in StateLoading
// with the default document so the form is renderable before Load returns.
func New(baseURL, shop string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		shop:    shop,
		http:    &http.Client{Timeout: DefaultTimeout},
		state:   StateLoading,
		doc:     settings.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current session state.
func (c *Client) State() State {
	return c.state
}

// Document returns the locally held document.
func (c *Client) Document() settings.Document {
	return c.doc
}

// Load fetches the shop's resolved document. On success the session is
// Clean; on any failure the session state and the local document are left
// untouched so the merchant can keep editing.
func (c *Client) Load(ctx context.Context) error {
	if c.shop == "" {
		return ErrShopEmpty
	}

	req, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to load settings")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrServerRejected, "load returned status %d", resp.StatusCode)
	}

	var doc settings.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return errors.Wrap(err, "failed to decode settings document")
	}

	c.doc = doc
	c.state = StateClean

	return nil
}

// Save posts the full local document. On success the session is Clean; on
// failure it stays Dirty with the local document untouched.
func (c *Client) Save(ctx context.Context) error {
	if c.shop == "" {
		return ErrShopEmpty
	}

	body, err := json.Marshal(c.doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings document")
	}

	req, err := c.newRequest(ctx, http.MethodPost, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to save settings")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrServerRejected, "save returned status %d", resp.StatusCode)
	}

	c.state = StateClean

	return nil
}

// SetButtonStyle edits the local button style and marks the session Dirty.
func (c *Client) SetButtonStyle(style string) {
	c.doc.ButtonStyle = style
	c.state = StateDirty
}

// SetButtonSize edits the local button size and marks the session Dirty.
func (c *Client) SetButtonSize(size string) {
	c.doc.ButtonSize = size
	c.state = StateDirty
}

// TogglePlatform flips a platform's membership in the local selection
// without a network round-trip. Insertion order is preserved for display
// stability.
func (c *Client) TogglePlatform(id string) {
	for i, p := range c.doc.Platforms {
		if p == id {
			c.doc.Platforms = append(c.doc.Platforms[:i], c.doc.Platforms[i+1:]...)
			c.state = StateDirty

			return
		}
	}

	c.doc.Platforms = append(c.doc.Platforms, id)
	c.state = StateDirty
}

func (c *Client) newRequest(ctx context.Context, method string, body *bytes.Reader) (*http.Request, error) {
	u := c.baseURL + "/api/settings?shop=" + url.QueryEscape(c.shop)

	var req *http.Request

	var err error

	if body == nil {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, body)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to build settings request")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}
