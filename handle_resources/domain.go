package handle_resources

import (
	"context"
	"net/http"

	"github.com/domainlens/domainlens/lookup_tools"
	"github.com/domainlens/domainlens/utils"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// classificationStatus maps a lookup error classification to an HTTP status code.
var classificationStatus = map[lookup_tools.ErrorType]int{
	lookup_tools.ErrorInvalidDomain:  http.StatusBadRequest,
	lookup_tools.ErrorUnsupportedTLD: http.StatusNotFound,
	lookup_tools.ErrorNotRegistered:  http.StatusNotFound,
	lookup_tools.ErrorTimeout:        http.StatusGatewayTimeout,
	lookup_tools.ErrorRateLimit:      http.StatusTooManyRequests,
	lookup_tools.ErrorNetwork:        http.StatusBadGateway,
	lookup_tools.ErrorUnknown:        http.StatusInternalServerError,
}

// NormalizeDomain converts an input domain to its ASCII (Punycode) form and
// reduces it to the registrable domain (eTLD+1). Subdomain input therefore
// resolves to the registration that actually covers it.
func NormalizeDomain(resource string) (string, error) {
	punycodeDomain, err := idna.ToASCII(resource)
	if err != nil {
		return "", err
	}

	mainDomain, err := publicsuffix.EffectiveTLDPlusOne(punycodeDomain)
	if err != nil || mainDomain == "" {
		// Unknown suffixes still get looked up as given.
		return punycodeDomain, nil
	}
	return mainDomain, nil
}

// HandleDomain handles the HTTP request for querying the registration record
// of a domain through the RDAP-first, WHOIS-fallback orchestrator.
func HandleDomain(ctx context.Context, w http.ResponseWriter, o *lookup_tools.Orchestrator, resource string) {
	domain, err := NormalizeDomain(resource)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid domain name: "+resource,
			"Expected a format like example.com or subdomain.example.com.")
		return
	}

	record, lookupErr := o.Lookup(ctx, domain)
	if lookupErr != nil {
		status, ok := classificationStatus[lookupErr.Classification.Type]
		if !ok {
			status = http.StatusInternalServerError
		}
		utils.WriteError(w, status, lookupErr.Classification.Message, lookupErr.Classification.Suggestion)
		return
	}

	utils.WriteJSON(w, http.StatusOK, record)
}
