package rdap_tools

import (
	"errors"
	"testing"
)

const sampleRDAPResponse = `{
  "objectClassName": "domain",
  "ldhName": "EXAMPLE.COM",
  "handle": "2336799_DOMAIN_COM-VRSN",
  "status": ["client delete prohibited", "client transfer prohibited"],
  "events": [
    {"eventAction": "registration", "eventDate": "1995-08-14T04:00:00Z"},
    {"eventAction": "expiration", "eventDate": "2026-08-13T04:00:00Z"},
    {"eventAction": "last changed", "eventDate": "2023-08-14T07:01:38Z"},
    {"eventAction": "last update of RDAP database", "eventDate": "2024-06-01T00:00:00Z"}
  ],
  "nameservers": [
    {"objectClassName": "nameserver", "ldhName": "A.IANA-SERVERS.NET"},
    {"objectClassName": "nameserver", "ldhName": "B.IANA-SERVERS.NET"}
  ],
  "secureDNS": {"delegationSigned": true},
  "entities": [
    {
      "objectClassName": "entity",
      "roles": ["registrar"],
      "vcardArray": ["vcard", [
        ["version", {}, "text", "4.0"],
        ["fn", {}, "text", "RESERVED-Internet Assigned Numbers Authority"]
      ]]
    },
    {
      "objectClassName": "entity",
      "roles": ["registrant"],
      "vcardArray": ["vcard", [
        ["version", {}, "text", "4.0"],
        ["fn", {}, "text", "Jane Registrant"],
        ["org", {}, "text", "Example Holdings"],
        ["email", {}, "text", "jane@example.com"]
      ]]
    }
  ]
}`

func TestParseRDAPResponseForDomain(t *testing.T) {
	record, err := ParseRDAPResponseForDomain([]byte(sampleRDAPResponse), "example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.Domain != "EXAMPLE.COM" {
		t.Errorf("Domain = %q", record.Domain)
	}
	if record.Source != "rdap" {
		t.Errorf("Source = %q", record.Source)
	}
	if record.Registrar != "RESERVED-Internet Assigned Numbers Authority" {
		t.Errorf("Registrar = %q", record.Registrar)
	}
	if len(record.Statuses) != 2 || record.Statuses[0] != "client delete prohibited" {
		t.Errorf("Statuses = %v", record.Statuses)
	}
	if record.Events.CreatedAt != "1995-08-14 04:00:00" {
		t.Errorf("CreatedAt = %q", record.Events.CreatedAt)
	}
	if record.Events.ExpiresAt != "2026-08-13 04:00:00" {
		t.Errorf("ExpiresAt = %q", record.Events.ExpiresAt)
	}
	if record.Events.UpdatedAt != "2023-08-14 07:01:38" {
		t.Errorf("UpdatedAt = %q", record.Events.UpdatedAt)
	}
	if len(record.Nameservers) != 2 || record.Nameservers[0] != "a.iana-servers.net" {
		t.Errorf("Nameservers = %v", record.Nameservers)
	}
	if record.DNSSEC == nil || !*record.DNSSEC {
		t.Error("DNSSEC should be signed")
	}
	if record.Contacts.Registrant == nil || record.Contacts.Registrant.Name != "Jane Registrant" {
		t.Errorf("Registrant = %+v", record.Contacts.Registrant)
	}
	if record.Contacts.Registrant.Email != "jane@example.com" {
		t.Errorf("Registrant email = %q", record.Contacts.Registrant.Email)
	}
	if _, ok := record.Raw["rdap"]; !ok {
		t.Error("raw rdap payload missing")
	}
}

func TestParseRDAPResponseDNSSECUnknownWhenAbsent(t *testing.T) {
	record, err := ParseRDAPResponseForDomain([]byte(`{"ldhName": "example.org"}`), "example.org")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.DNSSEC != nil {
		t.Errorf("DNSSEC = %v, want nil when secureDNS absent", *record.DNSSEC)
	}
}

func TestParseRDAPResponseStringSignedFlag(t *testing.T) {
	record, err := ParseRDAPResponseForDomain([]byte(`{"ldhName": "example.org", "secureDNS": {"zoneSigned": "true"}}`), "example.org")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.DNSSEC == nil || !*record.DNSSEC {
		t.Error("string \"true\" should count as signed")
	}
}

func TestParseRDAPResponsePort43Registrar(t *testing.T) {
	record, err := ParseRDAPResponseForDomain([]byte(`{"ldhName": "example.org", "port43": "whois.example-registry.org"}`), "example.org")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.Registrar != "whois.example-registry.org" {
		t.Errorf("Registrar = %q", record.Registrar)
	}
}

func TestParseRDAPResponseKeepsUnparseableEventDate(t *testing.T) {
	body := `{"ldhName": "example.org", "events": [{"eventAction": "registration", "eventDate": "sometime in 1998"}]}`
	record, err := ParseRDAPResponseForDomain([]byte(body), "example.org")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.Events.CreatedAt != "sometime in 1998" {
		t.Errorf("CreatedAt = %q, want raw value preserved", record.Events.CreatedAt)
	}
}

func TestParseRDAPResponseMalformedJSON(t *testing.T) {
	_, err := ParseRDAPResponseForDomain([]byte("not json"), "example.org")
	var rdapErr *RDAPError
	if !errors.As(err, &rdapErr) || rdapErr.Kind != ErrRDAPMalformed {
		t.Fatalf("Expected malformed RDAPError, got %v", err)
	}
}
