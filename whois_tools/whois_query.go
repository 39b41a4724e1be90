package whois_tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/server_lists"
)

// Timing knobs for the raw WHOIS transport. Tests shrink these.
var (
	whoisConnectTimeout = 5 * time.Second
	whoisTotalTimeout   = 15 * time.Second
	whoisMaxRetries     = 1
	whoisRetryBackoff   = 300 * time.Millisecond
)

// httpFallbackURL is the HTTP WHOIS gateway tried when every port-43 server
// failed. Empty disables the fallback.
var httpFallbackURL = "https://whois.domains/api/domain/info?domain="

var httpFallbackClient = &http.Client{Timeout: 8 * time.Second}

// notFoundMarkers are the phrases registries use to say a domain is not
// registered. Matched case-insensitively against the whole response.
var notFoundMarkers = []string{
	"no match",
	"not found",
	"no entries found",
	"no data found",
	"object does not exist",
	"nothing found",
	"status: free",
	"is available for registration",
}

func isNotFoundResponse(response string) bool {
	lower := strings.ToLower(response)
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// queryServer sends one WHOIS query over raw TCP and reads the response to
// connection close. A response of zero bytes counts as a failure.
func queryServer(ctx context.Context, server, domain string) (string, error) {
	addr := server
	if !strings.Contains(addr, ":") {
		addr = net.JoinHostPort(addr, "43")
	}

	dialer := net.Dialer{Timeout: whoisConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	// Closing the socket is the only way to interrupt a blocked read when
	// the caller gives up.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte(domain + "\r\n")); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, conn); err != nil && buf.Len() == 0 {
		return "", err
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("empty response from %s", server)
	}
	return buf.String(), nil
}

// queryHTTPFallback asks the HTTP WHOIS gateway for the raw record.
func queryHTTPFallback(ctx context.Context, domain string) (string, error) {
	if httpFallbackURL == "" {
		return "", errors.New("http fallback disabled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpFallbackURL+url.QueryEscape(domain), nil)
	if err != nil {
		return "", err
	}
	resp, err := httpFallbackClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http fallback returned status %d", resp.StatusCode)
	}

	var payload struct {
		Whois string `json:"whois"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Whois == "" {
		return "", errors.New("http fallback returned empty record")
	}
	return payload.Whois, nil
}

// echoesQueriedDomain reports whether the response mentions the queried
// domain. Registries disagree on echo format, so a mismatch is advisory.
func echoesQueriedDomain(response, domain string) bool {
	lower := strings.ToLower(response)
	return strings.Contains(lower, strings.ToLower(domain))
}

// WhoisLookup queries the WHOIS servers for a domain in order and parses
// the first usable response. Servers are retried once with backoff before
// moving on; when every server fails the HTTP gateway is tried last.
func WhoisLookup(ctx context.Context, domain string) (*structs.DomainRecord, error) {
	servers := server_lists.WhoisServersFor(domain)
	if len(servers) == 0 {
		return nil, &WhoisError{Kind: ErrWhoisNoServer, Err: fmt.Errorf("no WHOIS server known for domain: %s", domain)}
	}

	ctx, cancel := context.WithTimeout(ctx, whoisTotalTimeout)
	defer cancel()

	log.Printf("Querying WHOIS for domain: %s on servers: %v\n", domain, servers)

	var lastErr error
	lastServer := ""

	for _, server := range servers {
		for attempt := 0; attempt <= whoisMaxRetries; attempt++ {
			if attempt > 0 {
				backoff := whoisRetryBackoff * time.Duration(1<<(attempt-1))
				select {
				case <-time.After(backoff):
				case <-ctx.Done():
					return nil, wrapTransportError(ctx.Err(), server)
				}
			}

			response, err := queryServer(ctx, server, domain)
			if err != nil {
				lastErr = err
				lastServer = server
				log.Printf("WHOIS server %s failed for %s: %v\n", server, domain, err)
				if ctx.Err() != nil {
					return nil, wrapTransportError(ctx.Err(), server)
				}
				continue
			}

			if isNotFoundResponse(response) {
				return nil, &WhoisError{Kind: ErrWhoisNotFound, Server: server, Err: fmt.Errorf("domain %s is not registered", domain)}
			}
			if !echoesQueriedDomain(response, domain) {
				log.Printf("WHOIS response from %s does not echo %s\n", server, domain)
			}

			return ParseWhoisResponse(response, domain).Record(domain, response), nil
		}
	}

	response, err := queryHTTPFallback(ctx, domain)
	if err == nil {
		if isNotFoundResponse(response) {
			return nil, &WhoisError{Kind: ErrWhoisNotFound, Err: fmt.Errorf("domain %s is not registered", domain)}
		}
		return ParseWhoisResponse(response, domain).Record(domain, response), nil
	}
	log.Printf("WHOIS HTTP fallback failed for %s: %v\n", domain, err)

	return nil, wrapTransportError(lastErr, lastServer)
}

// wrapTransportError converts a socket-level failure into a WhoisError,
// telling timeouts apart from other network faults.
func wrapTransportError(err error, server string) *WhoisError {
	kind := ErrWhoisNetwork
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrWhoisTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = ErrWhoisTimeout
	case err != nil && strings.Contains(err.Error(), "empty response"):
		kind = ErrWhoisServerRejected
	}
	return &WhoisError{Kind: kind, Server: server, Err: err}
}
