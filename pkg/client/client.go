// Package client is a typed binding of the Windmill REST API.
//
// Every method issues exactly one HTTP request, accepts the declared
// success status only and reports anything else as *UnexpectedResponseError.
package client

import (
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// APIVersion is the Windmill API version this binding was written against.
const APIVersion = "1.478.1"

const defaultTimeout = 15 * time.Second

// Client is safe for concurrent use. Its configuration is fixed at
// construction.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	token       string
	userAgent   string
	insecure    bool
	caPEM       []byte
	compression bool
	logger      *slog.Logger
}

// WithToken sends token as a Bearer credential on every request.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithTLS skips certificate verification when insecure is set, otherwise
// trusts the certificates in caPEM in place of the system pool.
func WithTLS(insecure bool, caPEM []byte) Option {
	return func(o *options) {
		o.insecure = insecure
		o.caPEM = caPEM
	}
}

// WithCompression advertises zstd, br and gzip and decodes compressed
// response bodies transparently.
func WithCompression() Option {
	return func(o *options) { o.compression = true }
}

// WithLogger logs one debug line per request.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a Client for baseURL (for example "https://app.windmill.dev/api")
// with a 15s overall and connect timeout.
func New(baseURL string, opts ...Option) *Client {
	o := collect(opts)
	dialer := &net.Dialer{Timeout: defaultTimeout, KeepAlive: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	if o.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	} else if len(o.caPEM) > 0 {
		caCertPool := x509.NewCertPool()
		if caCertPool.AppendCertsFromPEM(o.caPEM) {
			transport.TLSClientConfig = &tls.Config{RootCAs: caCertPool}
		}
	}
	var rt http.RoundTripper = transport
	if o.compression {
		rt = &decompressTransport{next: rt}
	}
	hc := &http.Client{
		Transport: rt,
		Timeout:   defaultTimeout,
	}
	return build(baseURL, hc, o)
}

// NewWithClient creates a Client that sends requests through hc. TLS options
// are ignored; WithCompression wraps hc's transport.
func NewWithClient(baseURL string, hc *http.Client, opts ...Option) *Client {
	o := collect(opts)
	if o.compression {
		next := hc.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		clone := *hc
		clone.Transport = &decompressTransport{next: next}
		hc = &clone
	}
	return build(baseURL, hc, o)
}

func collect(opts []Option) options {
	o := options{userAgent: "wmill-go/" + APIVersion}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func build(baseURL string, hc *http.Client, o options) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      o.token,
		userAgent:  o.userAgent,
		httpClient: hc,
		logger:     o.logger,
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// APIVersion returns the API version this binding targets.
func (c *Client) APIVersion() string { return APIVersion }

// NormalizeBaseURL turns a Windmill instance URL into its API root by
// appending "/api" when it is missing.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	if strings.HasSuffix(u, "/api") {
		return u
	}
	return u + "/api"
}
