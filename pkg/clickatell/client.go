// Package clickatell implements a client for the Clickatell HTTP SMS
// gateway API. It authenticates against the gateway, maintains a session,
// sends messages with required-feature negotiation, queries message and
// account status, and surfaces gateway error codes as typed failures.
//
// The gateway speaks a plaintext protocol: form-encoded POST requests and
// single-line colon-delimited responses. One client instance issues one
// blocking request at a time; only Auth and SetSessionID mutate shared
// state, so concurrent callers sharing an instance must synchronize those
// themselves.
package clickatell

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/actual-software/sms-bridge/internal/logging"
	"github.com/actual-software/sms-bridge/internal/metrics"
)

// Version identifies this client in the User-Agent header.
const Version = "0.7.0"

// Default connection parameters for the hosted gateway.
const (
	defaultScheme         = "https"
	defaultHostname       = "api.clickatell.com"
	defaultPort           = 443
	defaultTimeoutSeconds = 30
)

// Endpoint paths.
const (
	endpointAuth          = "/http/auth"
	endpointPing          = "/http/ping"
	endpointSendMsg       = "/http/sendmsg"
	endpointGetBalance    = "/http/getbalance"
	endpointQueryMsg      = "/http/querymsg"
	endpointDelMsg        = "/http/delmsg"
	endpointGetMsgCharge  = "/http/getmsgcharge"
	endpointTokenPay      = "/http/token_pay"
	endpointRouteCoverage = "/utils/routeCoverage"
)

// Options contains client configuration. Username, Password and APIID are
// mandatory; APIID may arrive as a numeric-looking string.
type Options struct {
	Scheme   string
	Hostname string
	Port     int
	Username string
	Password string
	APIID    string
	Timeout  time.Duration
}

// Client is a Clickatell HTTP API client.
type Client struct {
	opts    Options
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.Registry

	sessionID string
	delivAck  bool
}

// New creates a Client. Username, password and a numeric api_id are
// required; the specific missing field is named in the returned error, and
// username is checked before password before api_id.
func New(opts Options, logger *zap.Logger, metricsRegistry *metrics.Registry) (*Client, error) {
	if opts.Username == "" {
		return nil, newMissingCredential("username")
	}

	if opts.Password == "" {
		return nil, newMissingCredential("password")
	}

	if opts.APIID == "" {
		return nil, newMissingCredential("api_id")
	}

	if _, err := strconv.Atoi(opts.APIID); err != nil {
		return nil, newInvalidAccountID()
	}

	// Set defaults
	if opts.Scheme == "" {
		opts.Scheme = defaultScheme
	}

	if opts.Hostname == "" {
		opts.Hostname = defaultHostname
	}

	if opts.Port == 0 {
		opts.Port = defaultPort
	}

	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeoutSeconds * time.Second
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		opts:    opts,
		baseURL: fmt.Sprintf("%s://%s:%d", opts.Scheme, opts.Hostname, opts.Port),
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				// Legacy gateway deployments serve inconsistent
				// certificates.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
		logger:  logger.With(zap.String(logging.FieldComponent, logging.ComponentClient)),
		metrics: metricsRegistry,
	}, nil
}

// SessionID returns the current session token, or "" before authentication.
func (c *Client) SessionID() string {
	return c.sessionID
}

// SetSessionID installs a session token obtained elsewhere. Subsequent
// requests authenticate with it instead of the stored credentials.
func (c *Client) SetSessionID(sessionID string) {
	c.sessionID = sessionID
}

// DeliveryAck reports whether delivery acknowledgements are requested on
// outbound messages.
func (c *Client) DeliveryAck() bool {
	return c.delivAck
}

// SetDeliveryAck turns delivery acknowledgements on or off.
func (c *Client) SetDeliveryAck(value bool) {
	c.delivAck = value
}

// authParams returns the auth portion of a request body: the session token
// when one is set, otherwise the three credential parameters. Session-based
// auth supersedes credential-based auth on the gateway.
func (c *Client) authParams() url.Values {
	if c.sessionID != "" {
		return url.Values{"session_id": {c.sessionID}}
	}

	return url.Values{
		"user":     {c.opts.Username},
		"password": {c.opts.Password},
		"api_id":   {c.opts.APIID},
	}
}

// post issues one form-encoded POST and returns the plaintext body.
// Network and HTTP-level failures surface as transport errors, never as
// gateway errors.
func (c *Client) post(ctx context.Context, endpoint string, params url.Values) (string, error) {
	start := time.Now()

	c.metrics.IncRequestsInFlight()
	defer c.metrics.DecRequestsInFlight()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return "", newTransportError(endpoint, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "sms-bridge/"+Version)

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordTransportError(endpoint)

		return "", newTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordTransportError(endpoint)

		return "", newTransportError(endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.RecordTransportError(endpoint)

		return "", newTransportError(endpoint,
			fmt.Errorf("gateway returned HTTP %d", resp.StatusCode))
	}

	c.metrics.RecordRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
	c.logger.Debug("gateway request",
		zap.String(logging.FieldEndpoint, endpoint),
		zap.Int(logging.FieldStatusCode, resp.StatusCode),
		zap.Int64(logging.FieldDuration, time.Since(start).Milliseconds()),
		zap.Int(logging.FieldSize, len(body)),
	)

	return string(body), nil
}

// call merges the auth parameters into params and issues the request.
func (c *Client) call(ctx context.Context, endpoint string, params url.Values) (response, error) {
	if params == nil {
		params = url.Values{}
	}

	for key, values := range c.authParams() {
		params[key] = values
	}

	body, err := c.post(ctx, endpoint, params)
	if err != nil {
		return response{}, err
	}

	return parseResponse(body), nil
}

// Auth authenticates to the gateway with the stored credentials and keeps
// the issued session token for subsequent requests. Ordinary auth failure
// is reported as false, not as an error; only transport failures return an
// error.
func (c *Client) Auth(ctx context.Context) (bool, error) {
	body, err := c.post(ctx, endpointAuth, url.Values{
		"user":     {c.opts.Username},
		"password": {c.opts.Password},
		"api_id":   {c.opts.APIID},
	})
	if err != nil {
		return false, err
	}

	resp := parseResponse(body)
	if resp.kind != respOK {
		c.logger.Debug("authentication rejected", zap.String("body", strings.TrimSpace(body)))

		return false, nil
	}

	c.sessionID = resp.value(1)

	return true, nil
}

// Ping keeps the current session valid. Returns true iff the gateway
// acknowledged the session token.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	body, err := c.post(ctx, endpointPing, url.Values{
		"session_id": {c.sessionID},
	})
	if err != nil {
		return false, err
	}

	return parseResponse(body).kind == respOK, nil
}
