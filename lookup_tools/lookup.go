package lookup_tools

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/domainlens/domainlens/metrics"
	"github.com/domainlens/domainlens/rdap_tools"
	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/server_lists"
	"github.com/domainlens/domainlens/utils"
	"github.com/domainlens/domainlens/whois_tools"
)

// LookupError carries the classification of a failed lookup plus the
// underlying source errors.
type LookupError struct {
	Classification Classification
	RDAPErr        error
	WhoisErr       error
}

func (e *LookupError) Error() string { return e.Classification.Message }

// Orchestrator runs the RDAP-first, WHOIS-fallback lookup flow with a
// read-through cache. The function fields exist so tests can substitute the
// protocol clients.
type Orchestrator struct {
	Cache    utils.Cache
	CacheTTL time.Duration

	// RDAPTimeout bounds the primary RDAP phase. WhoisTimeout bounds the
	// WHOIS fallback when RDAP failed. SupplementTimeout bounds the
	// best-effort WHOIS pass that enriches a successful RDAP result: the
	// lookup waits up to this long for the supplement (so the merged record
	// can be returned and cached) rather than firing and forgetting it.
	RDAPTimeout       time.Duration
	WhoisTimeout      time.Duration
	SupplementTimeout time.Duration

	RDAPLookup     func(ctx context.Context, domain string) (*structs.DomainRecord, error)
	WhoisLookup    func(ctx context.Context, domain string) (*structs.DomainRecord, error)
	WhoisSupported func(domain string) bool
}

// NewOrchestrator wires an orchestrator to the real protocol clients.
func NewOrchestrator(cache utils.Cache, cacheTTL time.Duration) *Orchestrator {
	return &Orchestrator{
		Cache:             cache,
		CacheTTL:          cacheTTL,
		RDAPTimeout:       8 * time.Second,
		WhoisTimeout:      10 * time.Second,
		SupplementTimeout: 5 * time.Second,
		RDAPLookup:        rdap_tools.RDAPLookup,
		WhoisLookup:       whois_tools.WhoisLookup,
		WhoisSupported:    server_lists.IsWhoisSupported,
	}
}

func cacheKey(domain string) string {
	return "domain:" + strings.ToLower(domain)
}

// Lookup resolves the registration record for a domain. RDAP runs first;
// when it fails and the TLD has WHOIS coverage, WHOIS takes over. When RDAP
// succeeds, WHOIS runs as a bounded best-effort supplement and the two
// records are merged. Successful results are cached; repeated lookups
// within the TTL never hit the network.
func (o *Orchestrator) Lookup(ctx context.Context, domain string) (*structs.DomainRecord, *LookupError) {
	domain = strings.ToLower(strings.TrimSpace(domain))

	if !IsValidDomainFormat(domain) {
		metrics.LookupsTotal.WithLabelValues("invalid").Inc()
		return nil, &LookupError{Classification: Classify(domain, nil, nil, false)}
	}

	if o.Cache != nil {
		if cached, err := o.Cache.Get(ctx, cacheKey(domain)); err == nil && cached.Found {
			var record structs.DomainRecord
			if err := json.Unmarshal([]byte(cached.Data), &record); err == nil {
				metrics.CacheHitsTotal.Inc()
				metrics.LookupsTotal.WithLabelValues("cache").Inc()
				return &record, nil
			}
			log.Printf("Discarding undecodable cache entry for %s\n", domain)
		}
		metrics.CacheMissesTotal.Inc()
	}

	start := time.Now()
	record, lookupErr := o.resolve(ctx, domain)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())

	if lookupErr != nil {
		metrics.LookupsTotal.WithLabelValues(string(lookupErr.Classification.Type)).Inc()
		return nil, lookupErr
	}

	metrics.LookupsTotal.WithLabelValues("success").Inc()
	o.storeInCache(ctx, domain, record)
	return record, nil
}

func (o *Orchestrator) resolve(ctx context.Context, domain string) (*structs.DomainRecord, *LookupError) {
	hasWhois := o.WhoisSupported(domain)

	rdapCtx, cancel := context.WithTimeout(ctx, o.RDAPTimeout)
	rdapRecord, rdapErr := o.RDAPLookup(rdapCtx, domain)
	cancel()

	if rdapErr != nil {
		log.Printf("RDAP lookup failed for %s: %v\n", domain, rdapErr)

		var whoisErr error
		if hasWhois {
			whoisCtx, cancel := context.WithTimeout(ctx, o.WhoisTimeout)
			whoisRecord, err := o.WhoisLookup(whoisCtx, domain)
			cancel()
			if err == nil {
				return whoisRecord, nil
			}
			whoisErr = err
			log.Printf("WHOIS fallback failed for %s: %v\n", domain, whoisErr)
		} else {
			whoisErr = &whois_tools.WhoisError{Kind: whois_tools.ErrWhoisNoServer}
		}

		return nil, &LookupError{
			Classification: Classify(domain, rdapErr, whoisErr, hasWhois),
			RDAPErr:        rdapErr,
			WhoisErr:       whoisErr,
		}
	}

	if hasWhois {
		// Best effort only: a failed or slow supplement never degrades a
		// good RDAP answer.
		suppCtx, cancel := context.WithTimeout(ctx, o.SupplementTimeout)
		whoisRecord, err := o.WhoisLookup(suppCtx, domain)
		cancel()
		if err != nil {
			log.Printf("Supplementary WHOIS failed for %s: %v\n", domain, err)
			return rdapRecord, nil
		}
		return MergeRecords(rdapRecord, whoisRecord), nil
	}

	return rdapRecord, nil
}

func (o *Orchestrator) storeInCache(ctx context.Context, domain string, record *structs.DomainRecord) {
	if o.Cache == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		log.Printf("Failed to marshal record for caching: %v\n", err)
		return
	}
	if err := o.Cache.Set(ctx, cacheKey(domain), string(payload), o.CacheTTL); err != nil {
		log.Printf("Failed to cache result for %s: %v\n", domain, err)
	}
}
