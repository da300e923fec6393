package restclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Options struct {
	BaseURL         string
	Token           string
	Timeout         time.Duration
	RequestIDHeader string
	Logger          *logrus.Logger
	// HTTPClient replaces the underlying transport, mostly for tests.
	HTTPClient *http.Client
}

// Client is the shared transport behind every Resource. It performs no
// retries and caches nothing.
type Client struct {
	http            *resty.Client
	baseURL         string
	requestIDHeader string
	log             *logrus.Logger
}

func New(opts Options) *Client {
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(opts.Token), "Bearer ")); token != "" {
		rc.SetAuthToken(token)
	}

	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Client{
		http:            rc,
		baseURL:         strings.TrimRight(opts.BaseURL, "/") + "/",
		requestIDHeader: opts.RequestIDHeader,
		log:             log,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// AssetURL resolves a server-relative file reference for display.
func (c *Client) AssetURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	return c.baseURL + strings.TrimLeft(path, "/")
}

type call struct {
	op      string
	method  string
	path    string
	query   url.Values
	payload *Payload
}

// do executes one request and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	requestID := ""
	if c.requestIDHeader != "" {
		requestID = uuid.NewString()
		req.SetHeader(c.requestIDHeader, requestID)
	}
	if len(in.query) > 0 {
		req.SetQueryParamsFromValues(in.query)
	}
	if in.payload != nil {
		if err := in.payload.apply(req); err != nil {
			return nil, &Error{Kind: KindTransport, Op: in.op, Message: FallbackMessage, Err: err}
		}
	}

	started := time.Now()
	resp, err := req.Execute(in.method, in.path)
	entry := c.log.WithFields(logrus.Fields{
		"op":         in.op,
		"method":     in.method,
		"path":       in.path,
		"request_id": requestID,
		"duration":   time.Since(started).String(),
	})
	if err != nil {
		entry.WithError(err).Error("api call failed")
		return nil, &Error{Kind: KindTransport, Op: in.op, Message: FallbackMessage, Err: err}
	}

	status := resp.StatusCode()
	entry = entry.WithField("status", status)
	body := resp.Body()
	if status < 200 || status >= 300 {
		msg := serverMessage(body)
		entry.WithField("message", msg).Warn("api call rejected")
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &Error{Kind: KindStatus, Op: in.op, Status: status, Message: msg}
	}
	entry.Debug("api call")
	return body, nil
}
