package lookup_tools

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/domainlens/domainlens/rdap_tools"
	"github.com/domainlens/domainlens/whois_tools"
)

// ErrorType buckets a failed lookup into a user-facing category.
type ErrorType string

const (
	ErrorInvalidDomain  ErrorType = "invalid_domain"
	ErrorUnsupportedTLD ErrorType = "unsupported_tld"
	ErrorNotRegistered  ErrorType = "not_registered"
	ErrorTimeout        ErrorType = "timeout"
	ErrorRateLimit      ErrorType = "rate_limit"
	ErrorNetwork        ErrorType = "network_error"
	ErrorUnknown        ErrorType = "unknown"
)

// Classification is the user-facing explanation of a failed lookup.
type Classification struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

var domainFormatRegex = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z0-9][a-z0-9-]{0,61}[a-z0-9]$`)

// IsValidDomainFormat reports whether a string looks like a registrable
// domain in ASCII form.
func IsValidDomainFormat(domain string) bool {
	return len(domain) <= 253 && domainFormatRegex.MatchString(strings.ToLower(domain))
}

func extractTLD(domain string) string {
	parts := strings.Split(strings.ToLower(domain), ".")
	return parts[len(parts)-1]
}

// Classify buckets a failed lookup. The checks run in a fixed priority
// order so the same pair of errors always classifies the same way.
func Classify(domain string, rdapErr, whoisErr error, hasWhoisSupport bool) Classification {
	switch {
	case !IsValidDomainFormat(domain):
		return Classification{
			Type:       ErrorInvalidDomain,
			Message:    "Please enter a valid domain name.",
			Suggestion: "Expected a format like example.com or subdomain.example.com.",
		}
	case !hasWhoisSupport && rdapErr != nil && whoisErr != nil:
		return Classification{
			Type:       ErrorUnsupportedTLD,
			Message:    fmt.Sprintf("Lookups for the .%s TLD are not supported yet.", extractTLD(domain)),
			Suggestion: "Try a domain under a common TLD such as .com, .net or .org.",
		}
	case isTimeoutError(rdapErr) || isTimeoutError(whoisErr):
		return Classification{
			Type:       ErrorTimeout,
			Message:    "The lookup timed out. Please try again.",
			Suggestion: "The registry is responding slowly; check your connection or retry in a moment.",
		}
	case isRateLimitError(rdapErr) || isRateLimitError(whoisErr):
		return Classification{
			Type:       ErrorRateLimit,
			Message:    "Too many lookups. Please try again later.",
			Suggestion: "The registry is rate limiting queries; wait a few minutes before retrying.",
		}
	case isNotFoundError(rdapErr) || isNotFoundError(whoisErr):
		return Classification{
			Type:       ErrorNotRegistered,
			Message:    "This domain is not registered.",
			Suggestion: "The domain may be available for registration, or it may have expired and been deleted.",
		}
	case isNetworkError(rdapErr) || isNetworkError(whoisErr):
		return Classification{
			Type:       ErrorNetwork,
			Message:    "Could not reach the registry. Please check your connection.",
			Suggestion: "A network error occurred while contacting the lookup servers.",
		}
	}
	return Classification{
		Type:       ErrorUnknown,
		Message:    "The lookup failed and no registration data could be retrieved.",
		Suggestion: "The domain may not exist, or the registry service may be temporarily unavailable.",
	}
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var rdapErr *rdap_tools.RDAPError
	if errors.As(err, &rdapErr) && rdapErr.Kind == rdap_tools.ErrRDAPTimeout {
		return true
	}
	var whoisErr *whois_tools.WhoisError
	if errors.As(err, &whoisErr) && whoisErr.Kind == whois_tools.ErrWhoisTimeout {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out") || strings.Contains(msg, "time out")
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var rdapErr *rdap_tools.RDAPError
	if errors.As(err, &rdapErr) && rdapErr.Kind == rdap_tools.ErrRDAPRateLimited {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "too many requests") || strings.Contains(msg, "429")
}

func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var rdapErr *rdap_tools.RDAPError
	if errors.As(err, &rdapErr) && rdapErr.Kind == rdap_tools.ErrRDAPNotFound {
		return true
	}
	var whoisErr *whois_tools.WhoisError
	if errors.As(err, &whoisErr) && whoisErr.Kind == whois_tools.ErrWhoisNotFound {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "no match") ||
		strings.Contains(msg, "404") ||
		strings.Contains(msg, "no data") ||
		strings.Contains(msg, "no entries found") ||
		strings.Contains(msg, "object does not exist")
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var rdapErr *rdap_tools.RDAPError
	if errors.As(err, &rdapErr) && rdapErr.Kind == rdap_tools.ErrRDAPNetwork {
		return true
	}
	var whoisErr *whois_tools.WhoisError
	if errors.As(err, &whoisErr) && whoisErr.Kind == whois_tools.ErrWhoisNetwork {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") ||
		strings.Contains(msg, "connection") ||
		strings.Contains(msg, "refused")
}
