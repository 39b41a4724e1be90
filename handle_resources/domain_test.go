package handle_resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/domainlens/domainlens/lookup_tools"
	"github.com/domainlens/domainlens/rdap_tools"
	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/utils"
	"github.com/domainlens/domainlens/whois_tools"
)

func stubOrchestrator(record *structs.DomainRecord, rdapErr, whoisErr error) *lookup_tools.Orchestrator {
	return &lookup_tools.Orchestrator{
		Cache:             utils.NewMemoryCache(10, 0),
		CacheTTL:          time.Hour,
		RDAPTimeout:       time.Second,
		WhoisTimeout:      time.Second,
		SupplementTimeout: time.Second,
		RDAPLookup: func(ctx context.Context, domain string) (*structs.DomainRecord, error) {
			return record, rdapErr
		},
		WhoisLookup: func(ctx context.Context, domain string) (*structs.DomainRecord, error) {
			return nil, whoisErr
		},
		WhoisSupported: func(domain string) bool { return whoisErr != nil },
	}
}

func TestHandleDomainSuccess(t *testing.T) {
	record := &structs.DomainRecord{
		Domain:    "example.com",
		Registrar: "Example Registrar",
		Source:    structs.SourceRDAP,
	}
	o := stubOrchestrator(record, nil, nil)

	w := httptest.NewRecorder()
	HandleDomain(context.Background(), w, o, "example.com")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got structs.DomainRecord
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if got.Registrar != "Example Registrar" {
		t.Errorf("Registrar = %q", got.Registrar)
	}
}

func TestHandleDomainErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		rdapErr    error
		whoisErr   error
		wantStatus int
	}{
		{
			"not registered",
			&rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPNotFound},
			&whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNotFound},
			http.StatusNotFound,
		},
		{
			"timeout",
			&rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPTimeout},
			&whois_tools.WhoisError{Kind: whois_tools.ErrWhoisTimeout},
			http.StatusGatewayTimeout,
		},
		{
			"rate limited",
			&rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPRateLimited},
			&whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNetwork},
			http.StatusTooManyRequests,
		},
		{
			"network",
			&rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPNetwork},
			&whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNetwork},
			http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := stubOrchestrator(nil, tt.rdapErr, tt.whoisErr)

			w := httptest.NewRecorder()
			HandleDomain(context.Background(), w, o, "example.com")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body utils.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode error body: %v", err)
			}
			if body.Error == "" {
				t.Error("error body missing message")
			}
		})
	}
}

func TestHandleDomainInvalidInput(t *testing.T) {
	o := stubOrchestrator(nil, nil, nil)

	w := httptest.NewRecorder()
	HandleDomain(context.Background(), w, o, "not a domain")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "example.com"},
		{"www.example.com", "example.com"},
		{"deep.sub.example.co.uk", "example.co.uk"},
		{"münchen.de", "xn--mnchen-3ya.de"},
	}

	for _, tt := range tests {
		got, err := NormalizeDomain(tt.input)
		if err != nil {
			t.Errorf("NormalizeDomain(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
