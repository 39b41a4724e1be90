package rdap_tools

import "fmt"

// RDAPErrorKind classifies an RDAP lookup failure.
type RDAPErrorKind int

const (
	// ErrRDAPNotFound means every candidate server answered 404.
	ErrRDAPNotFound RDAPErrorKind = iota
	// ErrRDAPRateLimited means a server answered 429 and retries were exhausted.
	ErrRDAPRateLimited
	// ErrRDAPUnsupported means no RDAP server is known for the domain's TLD.
	ErrRDAPUnsupported
	// ErrRDAPNetwork means the transport failed on every candidate.
	ErrRDAPNetwork
	// ErrRDAPTimeout means the query exceeded its deadline.
	ErrRDAPTimeout
	// ErrRDAPMalformed means servers answered but no body was usable.
	ErrRDAPMalformed
)

func (k RDAPErrorKind) String() string {
	switch k {
	case ErrRDAPNotFound:
		return "not found"
	case ErrRDAPRateLimited:
		return "rate limited"
	case ErrRDAPUnsupported:
		return "unsupported"
	case ErrRDAPNetwork:
		return "network"
	case ErrRDAPTimeout:
		return "timeout"
	case ErrRDAPMalformed:
		return "malformed"
	}
	return "unknown"
}

// RDAPError is the failure type returned by the RDAP client.
type RDAPError struct {
	Kind   RDAPErrorKind
	Server string
	Err    error
}

func (e *RDAPError) Error() string {
	if e.Server != "" {
		if e.Err != nil {
			return fmt.Sprintf("rdap %s: server %s: %v", e.Kind, e.Server, e.Err)
		}
		return fmt.Sprintf("rdap %s: server %s", e.Kind, e.Server)
	}
	if e.Err != nil {
		return fmt.Sprintf("rdap %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("rdap %s", e.Kind)
}

func (e *RDAPError) Unwrap() error { return e.Err }
