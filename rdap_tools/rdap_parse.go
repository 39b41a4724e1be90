package rdap_tools

import (
	"encoding/json"
	"strings"

	"github.com/domainlens/domainlens/rdap_tools/structs"
	"github.com/domainlens/domainlens/whois_tools"
)

// ParseRDAPResponseForDomain parses an RDAP domain response body into a
// normalized DomainRecord. The body is walked as generic JSON because
// registries disagree on which optional members they send.
func ParseRDAPResponseForDomain(response []byte, queried string) (*structs.DomainRecord, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(response, &result); err != nil {
		return nil, &RDAPError{Kind: ErrRDAPMalformed, Err: err}
	}

	record := &structs.DomainRecord{
		Domain: queried,
		Raw:    map[string]json.RawMessage{"rdap": json.RawMessage(response)},
		Source: structs.SourceRDAP,
	}

	if ldhName, ok := result["ldhName"].(string); ok && ldhName != "" {
		record.Domain = ldhName
	} else if unicodeName, ok := result["unicodeName"].(string); ok && unicodeName != "" {
		record.Domain = unicodeName
	}

	if status, ok := result["status"].([]interface{}); ok {
		for _, s := range status {
			if str, ok := s.(string); ok && str != "" {
				record.Statuses = append(record.Statuses, strings.ToLower(str))
			}
		}
	}

	if nameservers, ok := result["nameservers"].([]interface{}); ok {
		for _, ns := range nameservers {
			nsMap, ok := ns.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := nsMap["ldhName"].(string)
			if name == "" {
				name, _ = nsMap["unicodeName"].(string)
			}
			if name != "" {
				record.Nameservers = append(record.Nameservers, strings.ToLower(name))
			}
		}
	}

	if events, ok := result["events"].([]interface{}); ok {
		for _, event := range events {
			eventInfo, ok := event.(map[string]interface{})
			if !ok {
				continue
			}
			action, _ := eventInfo["eventAction"].(string)
			date, _ := eventInfo["eventDate"].(string)
			if date == "" {
				continue
			}
			// Unparseable event dates are kept verbatim rather than dropped.
			parsed, ok := whois_tools.ParseDate(date)
			if !ok {
				parsed = date
			}

			action = strings.ToLower(action)
			switch {
			case strings.Contains(action, "registration"):
				record.Events.CreatedAt = parsed
			case strings.Contains(action, "expiration"), strings.Contains(action, "expiry"):
				record.Events.ExpiresAt = parsed
			case strings.Contains(action, "last changed"),
				strings.Contains(action, "last update"),
				strings.Contains(action, "update"):
				record.Events.UpdatedAt = parsed
			}
		}
	}

	if secureDNS, ok := result["secureDNS"].(map[string]interface{}); ok {
		signed := secureDNSSigned(secureDNS["zoneSigned"]) || secureDNSSigned(secureDNS["delegationSigned"])
		record.DNSSEC = &signed
	}

	record.Registrar = extractRegistrar(result)
	record.Contacts = mapContacts(result["entities"])

	return record, nil
}

// secureDNSSigned accepts the boolean and string-"true" encodings both seen
// in the wild.
func secureDNSSigned(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.ToLower(v) == "true"
	}
	return false
}

// extractRegistrar resolves the sponsoring registrar, preferring the
// registrarName and port43 shortcuts over walking the registrar entity's
// vCard.
func extractRegistrar(result map[string]interface{}) string {
	if name, ok := result["registrarName"].(string); ok && name != "" {
		return name
	}
	if port43, ok := result["port43"].(string); ok && port43 != "" {
		return port43
	}

	entities, ok := result["entities"].([]interface{})
	if !ok {
		return ""
	}
	for _, entity := range entities {
		entityMap, ok := entity.(map[string]interface{})
		if !ok {
			continue
		}
		if !hasRole(entityMap, "registrar") {
			continue
		}
		card := parseVCard(entityMap["vcardArray"])
		if card.Name != "" {
			return card.Name
		}
	}
	return ""
}

func hasRole(entity map[string]interface{}, want string) bool {
	roles, ok := entity["roles"].([]interface{})
	if !ok {
		return false
	}
	for _, role := range roles {
		if str, ok := role.(string); ok && strings.EqualFold(str, want) {
			return true
		}
	}
	return false
}

// parseVCard reads a jCard ["vcard", [[name, params, type, value], ...]]
// array into a Contact. Registries use both the standard property names and
// x- prefixed variants.
func parseVCard(vcardArray interface{}) structs.Contact {
	contact := structs.Contact{}

	outer, ok := vcardArray.([]interface{})
	if !ok || len(outer) < 2 {
		return contact
	}
	if tag, ok := outer[0].(string); !ok || tag != "vcard" {
		return contact
	}
	fields, ok := outer[1].([]interface{})
	if !ok {
		return contact
	}

	get := func(keys ...string) string {
		for _, key := range keys {
			for _, field := range fields {
				item, ok := field.([]interface{})
				if !ok || len(item) < 4 {
					continue
				}
				name, ok := item[0].(string)
				if !ok || name != key {
					continue
				}
				if value, ok := item[3].(string); ok && strings.TrimSpace(value) != "" {
					return strings.TrimSpace(value)
				}
			}
		}
		return ""
	}

	contact.Name = get("fn", "n")
	contact.Organization = get("org", "x-organization")
	contact.Email = get("email", "x-email")
	contact.Phone = get("tel", "x-phone")
	return contact
}

// roleToSlot maps RDAP entity roles to contact slots.
var roleToSlot = map[string]string{
	"registrant":     "registrant",
	"administrative": "admin",
	"admin":          "admin",
	"technical":      "tech",
	"tech":           "tech",
}

// mapContacts fills the contact slots from the response entities. The first
// entity seen for a role wins.
func mapContacts(entities interface{}) structs.Contacts {
	contacts := structs.Contacts{}

	list, ok := entities.([]interface{})
	if !ok {
		return contacts
	}
	for _, entity := range list {
		entityMap, ok := entity.(map[string]interface{})
		if !ok {
			continue
		}
		roles, ok := entityMap["roles"].([]interface{})
		if !ok {
			continue
		}
		card := parseVCard(entityMap["vcardArray"])
		if card.IsEmpty() {
			continue
		}
		for _, role := range roles {
			str, ok := role.(string)
			if !ok {
				continue
			}
			switch roleToSlot[strings.ToLower(str)] {
			case "registrant":
				if contacts.Registrant == nil {
					c := card
					contacts.Registrant = &c
				}
			case "admin":
				if contacts.Admin == nil {
					c := card
					contacts.Admin = &c
				}
			case "tech":
				if contacts.Tech == nil {
					c := card
					contacts.Tech = &c
				}
			}
		}
	}
	return contacts
}
