package lookup_tools

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/domainlens/domainlens/rdap_tools"
	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/utils"
	"github.com/domainlens/domainlens/whois_tools"
)

type stubClients struct {
	rdapCalls  atomic.Int32
	whoisCalls atomic.Int32

	rdapRecord *structs.DomainRecord
	rdapErr    error

	whoisRecord *structs.DomainRecord
	whoisErr    error
}

func (s *stubClients) orchestrator(whoisSupported bool) *Orchestrator {
	return &Orchestrator{
		Cache:             utils.NewMemoryCache(100, 0),
		CacheTTL:          time.Hour,
		RDAPTimeout:       time.Second,
		WhoisTimeout:      time.Second,
		SupplementTimeout: time.Second,
		RDAPLookup: func(ctx context.Context, domain string) (*structs.DomainRecord, error) {
			s.rdapCalls.Add(1)
			return s.rdapRecord, s.rdapErr
		},
		WhoisLookup: func(ctx context.Context, domain string) (*structs.DomainRecord, error) {
			s.whoisCalls.Add(1)
			return s.whoisRecord, s.whoisErr
		},
		WhoisSupported: func(domain string) bool { return whoisSupported },
	}
}

func rdapRecordFixture() *structs.DomainRecord {
	return &structs.DomainRecord{
		Domain:    "example.com",
		Registrar: "RDAP Registrar",
		Source:    structs.SourceRDAP,
	}
}

func whoisRecordFixture() *structs.DomainRecord {
	return &structs.DomainRecord{
		Domain:    "example.com",
		Registrar: "WHOIS Registrar",
		Events:    structs.Events{ExpiresAt: "2026-08-13 04:00:00"},
		Source:    structs.SourceWhois,
	}
}

func TestLookupMergesSupplementaryWhois(t *testing.T) {
	stub := &stubClients{rdapRecord: rdapRecordFixture(), whoisRecord: whoisRecordFixture()}
	o := stub.orchestrator(true)

	record, lookupErr := o.Lookup(context.Background(), "example.com")
	if lookupErr != nil {
		t.Fatalf("Expected success, got %v", lookupErr)
	}
	if record.Source != "merged" {
		t.Errorf("Source = %q, want merged", record.Source)
	}
	if record.Registrar != "RDAP Registrar" {
		t.Errorf("Registrar = %q, want RDAP value", record.Registrar)
	}
	if record.Events.ExpiresAt != "2026-08-13 04:00:00" {
		t.Errorf("ExpiresAt = %q, want WHOIS fill", record.Events.ExpiresAt)
	}
}

func TestLookupServesSecondCallFromCache(t *testing.T) {
	stub := &stubClients{rdapRecord: rdapRecordFixture(), whoisRecord: whoisRecordFixture()}
	o := stub.orchestrator(true)

	first, lookupErr := o.Lookup(context.Background(), "example.com")
	if lookupErr != nil {
		t.Fatalf("Expected success, got %v", lookupErr)
	}
	second, lookupErr := o.Lookup(context.Background(), "EXAMPLE.COM")
	if lookupErr != nil {
		t.Fatalf("Expected cached success, got %v", lookupErr)
	}

	if stub.rdapCalls.Load() != 1 {
		t.Errorf("RDAP called %d times, want 1", stub.rdapCalls.Load())
	}
	if first.Registrar != second.Registrar || first.Source != second.Source {
		t.Error("cached record differs from original")
	}
}

func TestLookupCacheTTLExpires(t *testing.T) {
	stub := &stubClients{rdapRecord: rdapRecordFixture()}
	o := stub.orchestrator(false)
	o.CacheTTL = 50 * time.Millisecond

	if _, lookupErr := o.Lookup(context.Background(), "example.com"); lookupErr != nil {
		t.Fatalf("Expected success, got %v", lookupErr)
	}
	time.Sleep(100 * time.Millisecond)
	if _, lookupErr := o.Lookup(context.Background(), "example.com"); lookupErr != nil {
		t.Fatalf("Expected success, got %v", lookupErr)
	}

	if stub.rdapCalls.Load() != 2 {
		t.Errorf("RDAP called %d times, want 2 after TTL expiry", stub.rdapCalls.Load())
	}
}

func TestLookupWhoisFallbackWhenRDAPFails(t *testing.T) {
	stub := &stubClients{
		rdapErr:     &rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPUnsupported},
		whoisRecord: whoisRecordFixture(),
	}
	o := stub.orchestrator(true)

	record, lookupErr := o.Lookup(context.Background(), "example.com")
	if lookupErr != nil {
		t.Fatalf("Expected WHOIS fallback, got %v", lookupErr)
	}
	if record.Source != "whois" {
		t.Errorf("Source = %q, want whois", record.Source)
	}
}

func TestLookupSupplementFailureKeepsRDAPResult(t *testing.T) {
	stub := &stubClients{
		rdapRecord: rdapRecordFixture(),
		whoisErr:   &whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNetwork},
	}
	o := stub.orchestrator(true)

	record, lookupErr := o.Lookup(context.Background(), "example.com")
	if lookupErr != nil {
		t.Fatalf("Expected RDAP result despite supplement failure, got %v", lookupErr)
	}
	if record.Source != "rdap" {
		t.Errorf("Source = %q, want rdap", record.Source)
	}
}

func TestLookupUnsupportedTLDClassification(t *testing.T) {
	stub := &stubClients{rdapErr: &rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPUnsupported}}
	o := stub.orchestrator(false)

	_, lookupErr := o.Lookup(context.Background(), "example.notatld")
	if lookupErr == nil {
		t.Fatal("Expected classification error")
	}
	if lookupErr.Classification.Type != ErrorUnsupportedTLD {
		t.Errorf("Type = %v, want unsupported_tld", lookupErr.Classification.Type)
	}
	if stub.whoisCalls.Load() != 0 {
		t.Errorf("WHOIS called %d times for uncovered TLD, want 0", stub.whoisCalls.Load())
	}
}

func TestLookupInvalidDomainShortCircuits(t *testing.T) {
	stub := &stubClients{}
	o := stub.orchestrator(true)

	_, lookupErr := o.Lookup(context.Background(), "not a domain")
	if lookupErr == nil {
		t.Fatal("Expected classification error")
	}
	if lookupErr.Classification.Type != ErrorInvalidDomain {
		t.Errorf("Type = %v, want invalid_domain", lookupErr.Classification.Type)
	}
	if stub.rdapCalls.Load() != 0 {
		t.Errorf("RDAP called %d times for invalid input, want 0", stub.rdapCalls.Load())
	}
}

func TestLookupNotRegisteredClassification(t *testing.T) {
	stub := &stubClients{
		rdapErr:  &rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPNotFound},
		whoisErr: &whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNotFound},
	}
	o := stub.orchestrator(true)

	_, lookupErr := o.Lookup(context.Background(), "unregistered.com")
	if lookupErr == nil {
		t.Fatal("Expected classification error")
	}
	if lookupErr.Classification.Type != ErrorNotRegistered {
		t.Errorf("Type = %v, want not_registered", lookupErr.Classification.Type)
	}
}

func TestLookupFailureNotCached(t *testing.T) {
	stub := &stubClients{rdapErr: &rdap_tools.RDAPError{Kind: rdap_tools.ErrRDAPNetwork}}
	o := stub.orchestrator(false)

	for i := 0; i < 2; i++ {
		if _, lookupErr := o.Lookup(context.Background(), "example.com"); lookupErr == nil {
			t.Fatal("Expected failure")
		}
	}
	if stub.rdapCalls.Load() != 2 {
		t.Errorf("RDAP called %d times, want 2: failures must not be cached", stub.rdapCalls.Load())
	}
}
