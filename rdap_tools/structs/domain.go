package structs

import "encoding/json"

// Source values for DomainRecord.Source.
const (
	SourceRDAP   = "rdap"
	SourceWhois  = "whois"
	SourceMerged = "merged"
)

// Contact represents a registration contact extracted from an RDAP vCard or
// a WHOIS contact section.
type Contact struct {
	Name         string `json:"name,omitempty"`         // Name is the contact's personal name.
	Organization string `json:"organization,omitempty"` // Organization is the contact's organization.
	Email        string `json:"email,omitempty"`        // Email is the contact's email address.
	Phone        string `json:"phone,omitempty"`        // Phone is the contact's phone number.
}

// IsEmpty reports whether no contact field is populated.
func (c Contact) IsEmpty() bool {
	return c.Name == "" && c.Organization == "" && c.Email == "" && c.Phone == ""
}

// Events holds the lifecycle dates of a domain in canonical
// "YYYY-MM-DD HH:MM:SS" form. Empty string means unknown.
type Events struct {
	CreatedAt string `json:"createdAt,omitempty"` // CreatedAt is the registration date.
	UpdatedAt string `json:"updatedAt,omitempty"` // UpdatedAt is the last-changed date.
	ExpiresAt string `json:"expiresAt,omitempty"` // ExpiresAt is the expiry date.
}

// Contacts groups the contact slots of a registration record.
type Contacts struct {
	Registrant *Contact `json:"registrant,omitempty"` // Registrant is the domain holder.
	Admin      *Contact `json:"admin,omitempty"`      // Admin is the administrative contact.
	Tech       *Contact `json:"tech,omitempty"`       // Tech is the technical contact.
}

// DomainRecord is the normalized registration record produced by the RDAP
// client, the WHOIS client, or a merge of both. Statuses and Nameservers are
// lower-cased and de-duplicated. Raw keeps the upstream payload(s) keyed by
// origin ("rdap", "whois") so callers can display them without re-parsing.
type DomainRecord struct {
	Domain      string                     `json:"domain"`              // Domain is the display form of the domain.
	Registrar   string                     `json:"registrar,omitempty"` // Registrar is the sponsoring registrar.
	Statuses    []string                   `json:"statuses"`            // Statuses are the EPP-style status tokens.
	Events      Events                     `json:"events"`              // Events are the lifecycle dates.
	Nameservers []string                   `json:"nameservers"`         // Nameservers are the delegated name servers.
	DNSSEC      *bool                      `json:"dnssec,omitempty"`    // DNSSEC reports delegation signing; nil when unknown.
	Contacts    Contacts                   `json:"contacts"`            // Contacts are the registration contacts.
	Raw         map[string]json.RawMessage `json:"raw,omitempty"`       // Raw holds the upstream payloads keyed by origin.
	Source      string                     `json:"source"`              // Source is "rdap", "whois" or "merged".
}

// RawText wraps a raw WHOIS response so it can be stored in a
// DomainRecord's Raw map alongside RDAP JSON payloads.
func RawText(text string) json.RawMessage {
	b, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(b)
}
