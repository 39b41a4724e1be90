package server_lists

import "strings"

// matchTLD finds the table entry for a domain. The last two labels joined
// ("co.uk") are tried before the bare last label ("uk") so registries with
// second-level allocation win over the parent TLD.
func matchTLD(table map[string][]string, domain string) []string {
	parts := strings.Split(strings.ToLower(strings.TrimSuffix(domain, ".")), ".")
	if len(parts) < 2 {
		return nil
	}

	if len(parts) >= 3 {
		compound := parts[len(parts)-2] + "." + parts[len(parts)-1]
		if servers, ok := table[compound]; ok {
			return servers
		}
	}

	if servers, ok := table[parts[len(parts)-1]]; ok {
		return servers
	}
	return nil
}

// RdapServersFor returns the ordered RDAP base URLs for a domain, or nil
// when the TLD has no RDAP coverage.
func RdapServersFor(domain string) []string {
	return matchTLD(TLDToRdapServers, domain)
}

// WhoisServersFor returns the ordered WHOIS server hostnames for a domain,
// or nil when the TLD has no WHOIS coverage.
func WhoisServersFor(domain string) []string {
	return matchTLD(TLDToWhoisServers, domain)
}

// IsRdapSupported reports whether the domain's TLD has an RDAP entry.
func IsRdapSupported(domain string) bool {
	return len(RdapServersFor(domain)) > 0
}

// IsWhoisSupported reports whether the domain's TLD has a WHOIS entry.
func IsWhoisSupported(domain string) bool {
	return len(WhoisServersFor(domain)) > 0
}
