package whois_tools

import "fmt"

// WhoisErrorKind classifies a WHOIS lookup failure.
type WhoisErrorKind int

const (
	// ErrWhoisNoServer means no WHOIS server is known for the domain's TLD.
	ErrWhoisNoServer WhoisErrorKind = iota
	// ErrWhoisNotFound means a server answered that the domain is not registered.
	ErrWhoisNotFound
	// ErrWhoisTimeout means the query exceeded its deadline.
	ErrWhoisTimeout
	// ErrWhoisNetwork means the connection failed or was dropped.
	ErrWhoisNetwork
	// ErrWhoisServerRejected means the server answered with an empty or unusable response.
	ErrWhoisServerRejected
)

func (k WhoisErrorKind) String() string {
	switch k {
	case ErrWhoisNoServer:
		return "no server"
	case ErrWhoisNotFound:
		return "not found"
	case ErrWhoisTimeout:
		return "timeout"
	case ErrWhoisNetwork:
		return "network"
	case ErrWhoisServerRejected:
		return "server rejected"
	}
	return "unknown"
}

// WhoisError is the failure type returned by the WHOIS client. Server names
// the last server tried, when there was one.
type WhoisError struct {
	Kind   WhoisErrorKind
	Server string
	Err    error
}

func (e *WhoisError) Error() string {
	if e.Server != "" {
		if e.Err != nil {
			return fmt.Sprintf("whois %s: server %s: %v", e.Kind, e.Server, e.Err)
		}
		return fmt.Sprintf("whois %s: server %s", e.Kind, e.Server)
	}
	if e.Err != nil {
		return fmt.Sprintf("whois %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("whois %s", e.Kind)
}

func (e *WhoisError) Unwrap() error { return e.Err }
