package lookup_tools

import (
	"encoding/json"

	"github.com/domainlens/domainlens/rdap_tools/structs"
)

// MergeRecords combines an RDAP record with a WHOIS record for the same
// domain. RDAP values win for every scalar field; WHOIS fills the gaps.
// Statuses and nameservers are the union of both, RDAP entries first.
func MergeRecords(rdap, whois *structs.DomainRecord) *structs.DomainRecord {
	merged := &structs.DomainRecord{
		Domain:      firstNonEmpty(rdap.Domain, whois.Domain),
		Registrar:   firstNonEmpty(rdap.Registrar, whois.Registrar),
		Statuses:    unionStrings(rdap.Statuses, whois.Statuses),
		Nameservers: unionStrings(rdap.Nameservers, whois.Nameservers),
		Events: structs.Events{
			CreatedAt: firstNonEmpty(rdap.Events.CreatedAt, whois.Events.CreatedAt),
			UpdatedAt: firstNonEmpty(rdap.Events.UpdatedAt, whois.Events.UpdatedAt),
			ExpiresAt: firstNonEmpty(rdap.Events.ExpiresAt, whois.Events.ExpiresAt),
		},
		DNSSEC: rdap.DNSSEC,
		Contacts: structs.Contacts{
			Registrant: firstContact(rdap.Contacts.Registrant, whois.Contacts.Registrant),
			Admin:      firstContact(rdap.Contacts.Admin, whois.Contacts.Admin),
			Tech:       firstContact(rdap.Contacts.Tech, whois.Contacts.Tech),
		},
		Raw:    mergeRaw(rdap.Raw, whois.Raw),
		Source: structs.SourceMerged,
	}

	if merged.DNSSEC == nil {
		merged.DNSSEC = whois.DNSSEC
	}
	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstContact(a, b *structs.Contact) *structs.Contact {
	if a != nil {
		return a
	}
	return b
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func mergeRaw(rdap, whois map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(rdap)+len(whois))
	for key, payload := range rdap {
		out[key] = payload
	}
	for key, payload := range whois {
		out[key] = payload
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
