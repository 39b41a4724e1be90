package whois_tools

import "testing"

const verisignStyleResponse = `   Domain Name: EXAMPLE.COM
   Registry Domain ID: 2336799_DOMAIN_COM-VRSN
   Registrar WHOIS Server: whois.example-registrar.com
   Registrar URL: http://www.example-registrar.com
   Updated Date: 2023-08-14T07:01:38Z
   Creation Date: 1995-08-14T04:00:00Z
   Registry Expiry Date: 2026-08-13T04:00:00Z
   Registrar: Example Registrar, Inc.
   Domain Status: clientDeleteProhibited https://icann.org/epp#clientDeleteProhibited
   Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited
   Name Server: A.IANA-SERVERS.NET
   Name Server: B.IANA-SERVERS.NET
   DNSSEC: signedDelegation
>>> Last update of whois database: 2024-06-01T00:00:00Z <<<`

func TestParseWhoisResponseVerisignStyle(t *testing.T) {
	p := ParseWhoisResponse(verisignStyleResponse, "example.com")

	if p.Registrar != "Example Registrar, Inc." {
		t.Errorf("Registrar = %q", p.Registrar)
	}
	if p.CreatedAt != "1995-08-14 04:00:00" {
		t.Errorf("CreatedAt = %q", p.CreatedAt)
	}
	if p.ExpiresAt != "2026-08-13 04:00:00" {
		t.Errorf("ExpiresAt = %q", p.ExpiresAt)
	}
	if len(p.Nameservers) != 2 || p.Nameservers[0] != "a.iana-servers.net" || p.Nameservers[1] != "b.iana-servers.net" {
		t.Errorf("Nameservers = %v", p.Nameservers)
	}
	if len(p.Statuses) != 2 {
		t.Fatalf("Statuses = %v", p.Statuses)
	}
	if p.Statuses[0] != "clientdeleteprohibited" || p.Statuses[1] != "clienttransferprohibited" {
		t.Errorf("Statuses = %v, want lower-cased tokens without the EPP URLs", p.Statuses)
	}
	// "signedDelegation" must not leak into nameservers or statuses.
	for _, ns := range p.Nameservers {
		if ns == "signeddelegation" {
			t.Error("DNSSEC value captured as nameserver")
		}
	}
}

func TestParseWhoisResponseUpdatedTakesLatest(t *testing.T) {
	response := "Domain Name: example.com\nUpdated Date: 2023-01-01\nLast Modified: 2024-02-02\n"

	p := ParseWhoisResponse(response, "example.com")
	if p.UpdatedAt != "2024-02-02 00:00:00" {
		t.Errorf("UpdatedAt = %q, want latest candidate", p.UpdatedAt)
	}
}

func TestParseWhoisResponseNominetFreeForm(t *testing.T) {
	response := `    Domain name:
        example.co.uk

    Registrar:
        Example Networks Ltd

    Registered on: 30th June 2003
    Expiry date:  30-Jun-2026

    Name servers:
        ns1.example.net
`

	p := ParseWhoisResponse(response, "example.co.uk")
	if p.Registrar != "Example Networks Ltd" {
		t.Errorf("Registrar = %q", p.Registrar)
	}
	if p.CreatedAt != "2003-06-30 00:00:00" {
		t.Errorf("CreatedAt = %q", p.CreatedAt)
	}
	if p.ExpiresAt != "2026-06-30 00:00:00" {
		t.Errorf("ExpiresAt = %q", p.ExpiresAt)
	}
	if len(p.Nameservers) == 0 || p.Nameservers[0] != "ns1.example.net" {
		t.Errorf("Nameservers = %v", p.Nameservers)
	}
}

func TestParseWhoisResponseContactSection(t *testing.T) {
	response := `[HOLDER]
Name: Jane Holder
Organisation: Example GmbH
Email: jane@example.de
[ADMIN]
Name: Arno Admin
Email: arno@example.de
`

	p := ParseWhoisResponse(response, "example.de")
	if p.RegistrantName != "Jane Holder" {
		t.Errorf("RegistrantName = %q", p.RegistrantName)
	}
	if p.RegistrantOrg != "Example GmbH" {
		t.Errorf("RegistrantOrg = %q", p.RegistrantOrg)
	}
	if p.RegistrantEmail != "jane@example.de" {
		t.Errorf("RegistrantEmail = %q", p.RegistrantEmail)
	}
	if p.AdminName != "Arno Admin" {
		t.Errorf("AdminName = %q", p.AdminName)
	}
	if p.AdminEmail != "arno@example.de" {
		t.Errorf("AdminEmail = %q", p.AdminEmail)
	}
}

func TestParseWhoisResponseStatusCaseFolding(t *testing.T) {
	response := "Domain Status: clientTransferProhibited https://icann.org/epp#clientTransferProhibited\n" +
		"Status: CLIENTTRANSFERPROHIBITED\n"

	p := ParseWhoisResponse(response, "example.com")
	if len(p.Statuses) != 1 {
		t.Fatalf("Statuses = %v, want one de-duplicated entry", p.Statuses)
	}
	if p.Statuses[0] != "clienttransferprohibited" {
		t.Errorf("Statuses[0] = %q, want lower-cased token", p.Statuses[0])
	}
}

func TestParseWhoisResponseContactHeaderResetsSection(t *testing.T) {
	response := `[HOLDER]
Email: jane@example.de
[CONTACT]
Name: Generic Person
`

	p := ParseWhoisResponse(response, "example.de")
	if p.RegistrantEmail != "jane@example.de" {
		t.Errorf("RegistrantEmail = %q", p.RegistrantEmail)
	}
	if p.RegistrantName != "" {
		t.Errorf("RegistrantName = %q, fields after [CONTACT] must not attach to the holder", p.RegistrantName)
	}
}

func TestParseWhoisResponseRussianRegistry(t *testing.T) {
	response := `% TCI whois
domain:        EXAMPLE.RU
nserver:       ns1.example.ru.
state:         REGISTERED, DELEGATED, VERIFIED
registrar:     RU-CENTER-RU
created:       2002-04-03T20:00:00Z
paid-till:     2026-04-04T21:00:00Z
`

	p := ParseWhoisResponse(response, "example.ru")
	if p.Registrar != "RU-CENTER-RU" {
		t.Errorf("Registrar = %q", p.Registrar)
	}
	if p.CreatedAt != "2002-04-03 20:00:00" {
		t.Errorf("CreatedAt = %q", p.CreatedAt)
	}
	if p.ExpiresAt != "2026-04-04 21:00:00" {
		t.Errorf("ExpiresAt = %q", p.ExpiresAt)
	}
}

func TestParseWhoisResponseEmptyValuesSkipped(t *testing.T) {
	response := "Registrar: N/A\nCreation Date: —\nName Server: ok\n"

	p := ParseWhoisResponse(response, "example.com")
	if p.Registrar != "" {
		t.Errorf("Registrar = %q, want empty", p.Registrar)
	}
	if p.CreatedAt != "" {
		t.Errorf("CreatedAt = %q, want empty", p.CreatedAt)
	}
	if len(p.Nameservers) != 0 {
		t.Errorf("Nameservers = %v, want none", p.Nameservers)
	}
}

func TestParsedFieldsRecord(t *testing.T) {
	p := ParseWhoisResponse(verisignStyleResponse, "example.com")
	record := p.Record("example.com", verisignStyleResponse)

	if record.Source != "whois" {
		t.Errorf("Source = %q", record.Source)
	}
	if record.Domain != "example.com" {
		t.Errorf("Domain = %q", record.Domain)
	}
	if record.Events.CreatedAt != "1995-08-14 04:00:00" {
		t.Errorf("Events.CreatedAt = %q", record.Events.CreatedAt)
	}
	if _, ok := record.Raw["whois"]; !ok {
		t.Error("raw whois payload missing")
	}
	if record.Contacts.Registrant != nil {
		t.Error("expected no registrant contact for this response")
	}
}
