package executor

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/studiowebux/hcp/internal/filter"
	"github.com/studiowebux/hcp/internal/telemetry"
	"github.com/studiowebux/hcp/internal/types"
)

const (
	// DefaultTimeout bounds a whole mission, from dial to the last body byte
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent unless the draft sets its own User-Agent
	DefaultUserAgent = "hcp/1.0"

	chunkSize = 32 * 1024
)

var (
	// ErrConnection wraps failures before a response head is received
	ErrConnection = errors.New("failed to connect")

	// ErrStream wraps failures while the response body is being read
	ErrStream = errors.New("stream error")
)

// Options configures an Engine
type Options struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
	UserAgent          string
	Query              *filter.Query
	Logger             Logger
}

// Logger is the subset of *slog.Logger the engine uses
type Logger interface {
	Warn(msg string, args ...any)
}

// Engine executes drafts over a reusable HTTP client.
// It is safe for concurrent use; each Execute call is independent.
type Engine struct {
	client    *http.Client
	userAgent string
	query     *filter.Query
	logger    Logger
}

// New creates an Engine with its own transport
func New(opts Options) *Engine {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Engine{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		userAgent: opts.UserAgent,
		query:     opts.Query,
		logger:    opts.Logger,
	}
}

// Execute sends the draft and streams the response body, timing each phase.
// Transport failures wrap ErrConnection and body read failures wrap ErrStream.
// Header parsing and body formatting never fail a mission.
func (e *Engine) Execute(ctx context.Context, draft types.RequestDraft) (telemetry.MissionTelemetry, string, error) {
	var bodyReader io.Reader
	if draft.Body != "" {
		bodyReader = strings.NewReader(draft.Body)
	}

	req, err := http.NewRequestWithContext(ctx, draft.Method.String(), draft.URL, bodyReader)
	if err != nil {
		return telemetry.MissionTelemetry{}, "", fmt.Errorf("%w: %w", ErrConnection, err)
	}

	req.Header = ParseHeaders(draft.RawHeaders)
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
		req.Header.Del("Host")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	t0 := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		return telemetry.MissionTelemetry{}, "", fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	ttfb := time.Since(t0)

	var raw bytes.Buffer
	var size uint64
	chunk := make([]byte, chunkSize)
	transferStart := time.Now()
	for {
		n, readErr := resp.Body.Read(chunk)
		if n > 0 {
			size += uint64(n)
			raw.Write(chunk[:n])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return telemetry.MissionTelemetry{}, "", fmt.Errorf("%w: %w", ErrStream, readErr)
		}
	}
	end := time.Now()

	tele := telemetry.MissionTelemetry{
		ConnectToFirstByte: ttfb,
		Transfer:           end.Sub(transferStart),
		Total:              end.Sub(t0),
		SizeBytes:          size,
		Status:             resp.StatusCode,
	}

	return tele, e.format(DecodeBody(raw.Bytes())), nil
}

// format pretty-prints JSON bodies and applies the configured query, if any
func (e *Engine) format(text string) string {
	if e.query == nil {
		return FormatBody(text)
	}

	result, err := e.query.Apply(text)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("response query not applied", "query", e.query.String(), "error", err)
		}
		return FormatBody(text)
	}

	out, err := marshalIndent(result)
	if err != nil {
		return FormatBody(text)
	}
	return out
}

// ParseHeaders reads "Key: Value" lines. Lines without a colon, with an empty
// key, or with a key or value that is not legal on the wire are skipped.
// A later line replaces an earlier one with the same key.
func ParseHeaders(raw string) http.Header {
	headers := make(http.Header)

	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
			continue
		}

		headers.Set(key, value)
	}

	return headers
}
