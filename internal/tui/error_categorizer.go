package tui

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/studiowebux/hcp/internal/executor"
)

const (
	hintTimeout = "Request timeout - check the URL or raise --timeout (default: 30s)"
	hintRefused = "Connection refused - check if server is running and port is correct"
	hintReset   = "Connection reset by server - server may have crashed or network issue occurred"
	hintUnreach = "Network unreachable - check network connection and firewall settings"
	hintUntrust = "TLS certificate verification failed - certificate is not trusted. Install the CA certificate or start hcp with --insecure"
	hintStream  = "Response interrupted while streaming - partial body discarded"
)

// categorizeRequestError maps an error message to an actionable hint
func categorizeRequestError(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "context deadline exceeded") ||
		strings.Contains(errLower, "deadline exceeded") ||
		strings.Contains(errLower, "client.timeout exceeded") {
		return hintTimeout
	}

	// Proxy errors first: they often also read "connection refused"
	if strings.Contains(errLower, "proxyconnect") {
		return "Proxy connection failed - check HTTPS_PROXY / HTTP_PROXY"
	}

	if strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "dial tcp: lookup") {
		return "DNS resolution failed - verify hostname is correct and network is available"
	}

	if strings.Contains(errLower, "connection refused") {
		return hintRefused
	}

	if strings.Contains(errLower, "connection reset") {
		return hintReset
	}

	if strings.Contains(errLower, "network is unreachable") ||
		strings.Contains(errLower, "no route to host") {
		return hintUnreach
	}

	if strings.Contains(errLower, "tls") ||
		strings.Contains(errLower, "certificate") ||
		strings.Contains(errLower, "x509") ||
		strings.Contains(errLower, "https client") {
		return categorizeSSLError(errStr)
	}

	if strings.Contains(errLower, "stopped after") && strings.Contains(errLower, "redirect") {
		return "Too many redirects - check server configuration or URL"
	}

	if strings.Contains(errLower, "unsupported protocol") ||
		strings.Contains(errLower, "missing protocol scheme") ||
		strings.Contains(errLower, "invalid url") ||
		strings.Contains(errLower, "no host in request url") {
		return "Invalid URL - use a full http:// or https:// URL"
	}

	if strings.Contains(errLower, "eof") {
		return "Connection closed unexpectedly - server may have terminated the connection prematurely"
	}

	if strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "timed out") {
		return hintTimeout
	}

	if strings.Contains(errLower, "malformed http") {
		return "Malformed HTTP response - the server did not answer with HTTP"
	}

	return ""
}

// categorizeSSLError provides specific guidance for TLS certificate errors
func categorizeSSLError(errStr string) string {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "unknown authority") ||
		strings.Contains(errLower, "certificate is not trusted") {
		return hintUntrust
	}

	if strings.Contains(errLower, "expired") {
		return "TLS certificate has expired - contact server administrator or start hcp with --insecure"
	}

	if strings.Contains(errLower, "certificate is valid for") ||
		strings.Contains(errLower, "doesn't match") {
		return "TLS hostname mismatch - certificate doesn't match the requested hostname"
	}

	if strings.Contains(errLower, "handshake") {
		return "TLS handshake failed - check TLS version compatibility and cipher suites"
	}

	if strings.Contains(errLower, "server gave http response to https client") {
		return "Server speaks plain HTTP - use an http:// URL"
	}

	return "TLS error - check certificate configuration"
}

// categorizeError returns a one-line hint for a failed mission, or "" when
// nothing useful can be said beyond the error itself
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return hintTimeout
	}
	if errors.Is(err, context.Canceled) {
		return "Request cancelled"
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return hintUntrust
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return "TLS hostname mismatch - certificate doesn't match the requested hostname"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if hint := categorizeNetError(opErr); hint != "" {
			return hint
		}
	}

	if errors.Is(err, executor.ErrStream) {
		return hintStream
	}

	return categorizeRequestError(err.Error())
}

// categorizeNetError provides specific handling for net.OpError types
func categorizeNetError(e *net.OpError) string {
	if e.Timeout() {
		return hintTimeout
	}

	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED:
			return hintRefused
		case syscall.ECONNRESET:
			return hintReset
		case syscall.ENETUNREACH:
			return hintUnreach
		case syscall.EHOSTUNREACH:
			return "Host unreachable - check if server is online and accessible"
		}
	}

	return ""
}
