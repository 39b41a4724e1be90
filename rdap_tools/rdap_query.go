package rdap_tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/domainlens/domainlens/config"
	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/server_lists"
)

// Retry knobs for the RDAP transport. Tests shrink these.
var (
	rdapRetryAttempts  = 3
	rdapBackoffBase    = 400 * time.Millisecond
	rdapBackoffJitter  = 150 * time.Millisecond
	rdapRequestTimeout = 10 * time.Second
)

const rdapUserAgent = "domainlens/1.0"

// fetchRDAP performs one GET with retries on 429 and 5xx. Other statuses
// and successful bodies are returned to the caller for classification.
func fetchRDAP(ctx context.Context, requestURL string) ([]byte, int, error) {
	var lastErr error
	lastStatus := 0

	for attempt := 0; attempt < rdapRetryAttempts; attempt++ {
		if attempt > 0 {
			backoff := rdapBackoffBase * time.Duration(1<<(attempt-1))
			if rdapBackoffJitter > 0 {
				backoff += time.Duration(rand.Int63n(int64(rdapBackoffJitter)))
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, lastStatus, ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, rdapRequestTimeout)
		body, status, err := doRDAPRequest(attemptCtx, requestURL)
		cancel()

		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastStatus, ctx.Err()
			}
			continue
		}
		if status == http.StatusTooManyRequests || (status >= 500 && status <= 599) {
			lastStatus = status
			lastErr = fmt.Errorf("RDAP service returned %d", status)
			continue
		}
		return body, status, nil
	}
	return nil, lastStatus, lastErr
}

func doRDAPRequest(ctx context.Context, requestURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/rdap+json, application/json")
	req.Header.Set("User-Agent", rdapUserAgent)

	resp, err := config.HttpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// hasDomainIdentifiers reports whether an RDAP body names the domain it
// describes. Some registries answer 200 with an error document instead.
func hasDomainIdentifiers(body []byte) bool {
	var probe struct {
		LDHName     string `json:"ldhName"`
		UnicodeName string `json:"unicodeName"`
		Handle      string `json:"handle"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.LDHName != "" || probe.UnicodeName != "" || probe.Handle != ""
}

// RDAPLookup queries the RDAP servers for a domain in candidate order and
// parses the first usable response. A 404 moves to the next candidate; only
// when every candidate said 404 is the domain reported unregistered.
func RDAPLookup(ctx context.Context, domain string) (*structs.DomainRecord, error) {
	servers := server_lists.RdapServersFor(domain)
	if len(servers) == 0 {
		return nil, &RDAPError{Kind: ErrRDAPUnsupported, Err: fmt.Errorf("no RDAP server known for domain: %s", domain)}
	}

	log.Printf("Querying RDAP for domain: %s on servers: %v\n", domain, servers)

	var (
		sawNotFound  bool
		sawRateLimit bool
		lastErr      error
		lastServer   string
		sawMalformed bool
	)

	for _, server := range servers {
		// rdap.org is a redirector, not a registry; it only adds latency here.
		if server == "" || strings.Contains(server, "rdap.org") {
			continue
		}
		if !strings.HasSuffix(server, "/") {
			server += "/"
		}

		body, status, err := fetchRDAP(ctx, server+"domain/"+url.PathEscape(domain))
		if err != nil {
			lastErr = err
			lastServer = server
			if status == http.StatusTooManyRequests {
				sawRateLimit = true
			}
			if ctx.Err() != nil {
				return nil, wrapRDAPTransportError(ctx.Err(), server)
			}
			log.Printf("RDAP server %s failed for %s: %v\n", server, domain, err)
			continue
		}

		switch {
		case status == http.StatusNotFound:
			sawNotFound = true
			continue
		case status == http.StatusNotImplemented:
			continue
		case status != http.StatusOK:
			lastErr = fmt.Errorf("unexpected status code: %d", status)
			lastServer = server
			continue
		}

		if !hasDomainIdentifiers(body) {
			log.Printf("RDAP response from %s lacks domain identifiers for %s\n", server, domain)
			sawMalformed = true
			lastServer = server
			continue
		}

		return ParseRDAPResponseForDomain(body, domain)
	}

	switch {
	case sawNotFound:
		return nil, &RDAPError{Kind: ErrRDAPNotFound, Err: fmt.Errorf("domain %s not found in RDAP", domain)}
	case sawRateLimit:
		return nil, &RDAPError{Kind: ErrRDAPRateLimited, Server: lastServer, Err: lastErr}
	case sawMalformed && lastErr == nil:
		return nil, &RDAPError{Kind: ErrRDAPMalformed, Server: lastServer, Err: errors.New("RDAP response missing domain identifiers")}
	case lastErr != nil:
		return nil, wrapRDAPTransportError(lastErr, lastServer)
	}
	return nil, &RDAPError{Kind: ErrRDAPUnsupported, Err: fmt.Errorf("no usable RDAP server for domain: %s", domain)}
}

// wrapRDAPTransportError converts a transport failure into an RDAPError,
// telling timeouts apart from other network faults.
func wrapRDAPTransportError(err error, server string) *RDAPError {
	kind := ErrRDAPNetwork
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrRDAPTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = ErrRDAPTimeout
	}
	return &RDAPError{Kind: kind, Server: server, Err: err}
}
