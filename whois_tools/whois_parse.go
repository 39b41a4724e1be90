package whois_tools

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/domainlens/domainlens/rdap_tools/structs"
)

// ParsedFields holds everything the free-text parser could extract from a
// raw WHOIS response. Zero values mean the field was absent. The parser
// never fails: a response it cannot read at all yields an empty struct.
type ParsedFields struct {
	Registrar   string
	CreatedAt   string
	UpdatedAt   string
	ExpiresAt   string
	Nameservers []string
	Statuses    []string

	RegistrantName  string
	RegistrantEmail string
	RegistrantOrg   string
	AdminName       string
	AdminEmail      string
	AdminOrg        string
	TechName        string
	TechEmail       string
	TechOrg         string
}

// multi-language label patterns, matched against the raw line. The value is
// whatever follows the matched label.
var (
	registrarLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)sponsoring registrar:`),
		regexp.MustCompile(`(?i)registrar name:`),
		regexp.MustCompile(`(?i)registrar organization:`),
		regexp.MustCompile(`(?i)registrar:`),
		regexp.MustCompile(`(?i)bureau d'enregistrement:`),
		regexp.MustCompile(`(?i)registraire:`),
		regexp.MustCompile(`(?i)registrador:`),
		regexp.MustCompile(`(?i)registrierungsstelle:`),
		regexp.MustCompile(`注册商:`),
		regexp.MustCompile(`注册服务机构:`),
		regexp.MustCompile(`レジストラ:`),
		regexp.MustCompile(`(?i)регистратор:`),
	}
	nameserverLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)name server:`),
		regexp.MustCompile(`(?i)nameserver:`),
		regexp.MustCompile(`(?i)nserver:`),
		regexp.MustCompile(`(?i)dns:`),
		regexp.MustCompile(`(?i)serveur de noms:`),
		regexp.MustCompile(`(?i)servidor de nombres:`),
		regexp.MustCompile(`域名服务器:`),
		regexp.MustCompile(`名称服务器:`),
		regexp.MustCompile(`ネームサーバー:`),
		regexp.MustCompile(`(?i)сервер имен:`),
	}
	statusLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)domain status:`),
		regexp.MustCompile(`(?i)status:`),
		regexp.MustCompile(`(?i)statut:`),
		regexp.MustCompile(`(?i)estado:`),
		regexp.MustCompile(`状态:`),
		regexp.MustCompile(`ステータス:`),
		regexp.MustCompile(`(?i)статус:`),
	}
)

// date field patterns, matched against the normalized field key.
var (
	createdKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(created|creation|registered|registration)`),
		regexp.MustCompile(`(?i)domainregistrationdate`),
		regexp.MustCompile(`(?i)regdate`),
		regexp.MustCompile(`(?i)createdate`),
		regexp.MustCompile(`(?i)creationdate`),
		regexp.MustCompile(`(?i)registrationtime`),
		regexp.MustCompile(`(?i)registereddate`),
		regexp.MustCompile(`(?i)domaincreat`),
		regexp.MustCompile(`注册时间`),
		regexp.MustCompile(`创建时间`),
		regexp.MustCompile(`注册日期`),
		regexp.MustCompile(`作成日`),
		regexp.MustCompile(`登録日`),
		regexp.MustCompile(`(?i)датарегистрации`),
		regexp.MustCompile(`(?i)создан`),
		regexp.MustCompile(`등록일`),
	}
	updatedKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(updated|lastupdate|lastmodified|lastchanged|modified|changed)`),
		regexp.MustCompile(`(?i)domainupdatedate`),
		regexp.MustCompile(`(?i)lastchange`),
		regexp.MustCompile(`(?i)changeddate`),
		regexp.MustCompile(`(?i)modifieddate`),
		regexp.MustCompile(`(?i)updatedate`),
		regexp.MustCompile(`(?i)recordlastupdate`),
		regexp.MustCompile(`(?i)updatetime`),
		regexp.MustCompile(`(?i)modificationdate`),
		regexp.MustCompile(`(?i)recordmodified`),
		regexp.MustCompile(`(?i)lastmodification`),
		regexp.MustCompile(`更新时间`),
		regexp.MustCompile(`最后更新`),
		regexp.MustCompile(`修改时间`),
		regexp.MustCompile(`更新日`),
		regexp.MustCompile(`最終更新`),
		regexp.MustCompile(`(?i)датапоследнегоизменения`),
		regexp.MustCompile(`(?i)обновлен`),
		regexp.MustCompile(`최근수정일`),
	}
	expiresKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^expir`),
		regexp.MustCompile(`(?i)renewal`),
		regexp.MustCompile(`(?i)paidtill`),
		regexp.MustCompile(`(?i)expirationdate`),
		regexp.MustCompile(`(?i)expiredate`),
		regexp.MustCompile(`(?i)expire`),
		regexp.MustCompile(`(?i)registryexpiry`),
		regexp.MustCompile(`(?i)registrarexpiry`),
		regexp.MustCompile(`(?i)expirydate`),
		regexp.MustCompile(`(?i)domainexpir`),
		regexp.MustCompile(`(?i)validuntil`),
		regexp.MustCompile(`过期时间`),
		regexp.MustCompile(`到期时间`),
		regexp.MustCompile(`到期日期`),
		regexp.MustCompile(`有効期限`),
		regexp.MustCompile(`満了日`),
		regexp.MustCompile(`(?i)датаистечения`),
		regexp.MustCompile(`(?i)истекает`),
		regexp.MustCompile(`만료일`),
	}
)

var (
	reContactSection = regexp.MustCompile(`(?i)^\[(ADMIN_C|ADMIN|HOLDER|REGISTRANT|TECH_C|TECH|BILLING|OWNER|CONTACT)\]`)
	reTopLevelField  = regexp.MustCompile(`(?i)^(Domain|Registrar|Name Server|Status|Created|Updated|Expires)`)
	reEmail          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reHostname       = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)
	reStatusURL      = regexp.MustCompile(`(?i)^https?://.*?/`)
	reStatusTailURL  = regexp.MustCompile(`(?i)\s+https?://\S+$`)
	reLeadingSep     = regexp.MustCompile(`^[:\-\s]+`)
	reTrailingSep    = regexp.MustCompile(`[\s,;]+$`)

	reNSKey     = regexp.MustCompile(`^ns\d*$`)
	reNSHostKey = regexp.MustCompile(`^ns[a-z]*host`)

	// last-resort free-form scans
	reFreeRegistrar = regexp.MustCompile(`(?i)Registrar:\s*([^\n\r]+)`)
	reFreeCreated   = regexp.MustCompile(`(?i)Registered on\s*([^\n\r]+?)(?:\s+at|$)`)
	reFreeNS        = regexp.MustCompile(`(?i)ns[0-9]?\.[^\s,\r\n]+`)
)

// contact label patterns for responses without explicit [SECTION] markers,
// matched against the normalized field key.
var contactKeyPatterns = []struct {
	role     string
	patterns []*regexp.Regexp
}{
	{"registrant", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^registrant`),
		regexp.MustCompile(`(?i)^holder`),
		regexp.MustCompile(`(?i)^titulaire`),
		regexp.MustCompile(`(?i)^titular`),
		regexp.MustCompile(`(?i)^inhaber`),
		regexp.MustCompile(`(?i)^owner`),
		regexp.MustCompile(`(?i)^domainholder`),
		regexp.MustCompile(`(?i)^domainowner`),
	}},
	{"admin", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^admin`),
		regexp.MustCompile(`(?i)^administrateur`),
		regexp.MustCompile(`(?i)^administrador`),
		regexp.MustCompile(`(?i)^administrative`),
	}},
	{"tech", []*regexp.Regexp{
		regexp.MustCompile(`(?i)^tech`),
		regexp.MustCompile(`(?i)^technique`),
		regexp.MustCompile(`(?i)^técnico`),
		regexp.MustCompile(`(?i)^technical`),
	}},
}

var invalidNameserverValues = map[string]bool{
	"unsigned": true, "signed": true, "yes": true, "no": true,
	"active": true, "inactive": true, "ok": true,
	"clienthold": true, "serverhold": true,
	"pendingdelete": true, "redemptionperiod": true, "pendingrestore": true,
	"clienttransferprohibited": true, "servertransferprohibited": true,
	"clientdeleteprohibited": true, "serverdeleteprohibited": true,
	"clientupdateprohibited": true, "serverupdateprohibited": true,
	"clientrenewprohibited": true, "serverrenewprohibited": true,
}

var statusKeywords = []string{
	"ok", "active", "hold", "lock", "transfer", "delete", "update", "renew",
	"prohibit", "pending", "redemption", "restore", "client", "server",
	"registry", "registrar", "autorenew", "inactive",
}

var emptyFieldValues = map[string]bool{
	"—": true, "-": true, "n/a": true, "null": true, "none": true,
	"not defined": true, "not available": true, "unknown": true, "": true,
}

func isEmptyFieldValue(value string) bool {
	return emptyFieldValues[strings.ToLower(strings.TrimSpace(value))]
}

func isValidNameserver(value string) bool {
	if len(value) < 3 {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(value))
	if invalidNameserverValues[lower] {
		return false
	}
	if !strings.Contains(lower, ".") || strings.Contains(lower, " ") {
		return false
	}
	return reHostname.MatchString(lower)
}

func isValidStatus(value string) bool {
	if len(value) < 2 {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, keyword := range statusKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// matchLabelValue returns the cleaned value following the first pattern that
// matches the line, or "" when no pattern matches or the value is blank.
func matchLabelValue(line string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		loc := re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		value := strings.TrimSpace(line[loc[1]:])
		if value == "" || value == ":" {
			return ""
		}
		value = reLeadingSep.ReplaceAllString(value, "")
		value = reTrailingSep.ReplaceAllString(value, "")
		return value
	}
	return ""
}

// lineValue extracts the value part of a line. Colon-separated fields are
// the norm; short dash- or space-separated labels are also accepted.
func lineValue(line string) string {
	if idx := strings.Index(line, ":"); idx != -1 {
		return strings.TrimSpace(line[idx+1:])
	}
	if idx := strings.Index(line, "-"); idx != -1 && len(strings.TrimSpace(line[:idx])) < 20 {
		return strings.TrimSpace(line[idx+1:])
	}
	if idx := strings.Index(line, " "); idx != -1 && len(strings.TrimSpace(line[:idx])) < 20 {
		return strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line)
}

func anyKeyPatternMatches(normalized string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// firstToken cuts a candidate nameserver at whitespace or '(' so trailing
// glue addresses are dropped.
func firstToken(value string) string {
	if idx := strings.IndexAny(value, " \t("); idx != -1 {
		value = value[:idx]
	}
	return strings.ToLower(strings.TrimSpace(value))
}

// splitStatuses breaks a status line into lower-cased tokens. The EPP
// reference URL registries append after the token is stripped off.
func splitStatuses(value string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ';' }) {
		s := strings.TrimSpace(part)
		s = strings.TrimSpace(reStatusURL.ReplaceAllString(s, ""))
		s = strings.TrimSpace(reStatusTailURL.ReplaceAllString(s, ""))
		if s == "" || s == "—" || s == "-" || !isValidStatus(s) {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

// ParseWhoisResponse extracts structured registration fields from a raw
// WHOIS response. Country-specific registry patterns run first, then a
// line-by-line pass with multi-language label matching, then free-form
// last-resort scans. The parser is best-effort and never returns an error.
func ParseWhoisResponse(response, domain string) *ParsedFields {
	result := &ParsedFields{}

	countryFields := parseWithCountryPatterns(response, domain)
	if v := countryFields["registrar"]; v != "" && !isEmptyFieldValue(v) {
		result.Registrar = v
	}
	if v := countryFields["created"]; v != "" {
		if parsed, ok := ParseDate(v); ok {
			result.CreatedAt = parsed
		}
	}
	if v := countryFields["expires"]; v != "" {
		if parsed, ok := ParseDate(v); ok {
			result.ExpiresAt = parsed
		}
	}
	var potentialUpdates []string
	if v := countryFields["updated"]; v != "" {
		if parsed, ok := ParseDate(v); ok {
			potentialUpdates = append(potentialUpdates, parsed)
		}
	}
	if v := countryFields["status"]; v != "" {
		for _, s := range splitStatuses(v) {
			result.Statuses = appendUnique(result.Statuses, s)
		}
	}
	if v := countryFields["nameserver"]; v != "" {
		if ns := firstToken(v); isValidNameserver(ns) {
			result.Nameservers = appendUnique(result.Nameservers, ns)
		}
	}

	// Drop comments and blanks, merge continuation lines onto the previous
	// field line.
	var lines []string
	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch line[0] {
		case '%', '#', ';', '=':
			continue
		}
		if len(lines) > 0 && !strings.Contains(line, ":") && !strings.Contains(line, "-") &&
			!reContactSection.MatchString(line) {
			lines[len(lines)-1] += " " + line
			continue
		}
		lines = append(lines, line)
	}

	currentSection := ""

	for i, line := range lines {
		if m := reContactSection.FindStringSubmatch(line); m != nil {
			section := strings.ToLower(m[1])
			switch {
			case strings.Contains(section, "admin"):
				currentSection = "admin"
			case strings.Contains(section, "holder"), strings.Contains(section, "registrant"), strings.Contains(section, "owner"):
				currentSection = "registrant"
			case strings.Contains(section, "tech"):
				currentSection = "tech"
			case strings.Contains(section, "billing"), strings.Contains(section, "contact"):
				// Role unknown; fields here must not leak into the previous
				// section's contact.
				currentSection = ""
			}
			continue
		}

		if reTopLevelField.MatchString(line) {
			currentSection = ""
		}

		normalized := NormalizeFieldLabel(line)
		value := lineValue(line)
		if isEmptyFieldValue(value) {
			continue
		}

		if result.Registrar == "" {
			if v := matchLabelValue(line, registrarLinePatterns); v != "" && !isEmptyFieldValue(v) {
				result.Registrar = v
			} else if normalized == "registrar" ||
				strings.Contains(normalized, "sponsoringregistrar") ||
				strings.Contains(normalized, "registrarname") ||
				strings.Contains(normalized, "registrarorganization") ||
				strings.Contains(normalized, "domainregistrar") ||
				(strings.HasPrefix(normalized, "organization") && i > 0 &&
					strings.Contains(NormalizeFieldLabel(lines[i-1]), "registrar")) {
				if !strings.Contains(normalized, "phone") &&
					!strings.Contains(normalized, "email") &&
					!strings.Contains(normalized, "country") &&
					!strings.Contains(normalized, "url") &&
					!strings.Contains(normalized, "whois") &&
					!strings.Contains(normalized, "abuse") &&
					!strings.Contains(normalized, "iana") {
					result.Registrar = value
				}
			}
		}

		if result.CreatedAt == "" &&
			anyKeyPatternMatches(normalized, createdKeyPatterns) &&
			!strings.Contains(normalized, "expir") {
			if parsed, ok := ParseDate(value); ok {
				result.CreatedAt = parsed
			}
		}

		if anyKeyPatternMatches(normalized, updatedKeyPatterns) {
			if parsed, ok := ParseDate(value); ok {
				potentialUpdates = append(potentialUpdates, parsed)
			}
		}

		if result.ExpiresAt == "" && anyKeyPatternMatches(normalized, expiresKeyPatterns) {
			if parsed, ok := ParseDate(value); ok {
				result.ExpiresAt = parsed
			}
		}

		if v := matchLabelValue(line, nameserverLinePatterns); v != "" && !isEmptyFieldValue(v) {
			if ns := firstToken(v); isValidNameserver(ns) {
				result.Nameservers = appendUnique(result.Nameservers, ns)
			}
		} else if normalized == "nameserver" ||
			strings.HasPrefix(normalized, "nameserver") ||
			strings.HasPrefix(normalized, "nserver") ||
			reNSKey.MatchString(normalized) ||
			reNSHostKey.MatchString(normalized) ||
			strings.Contains(normalized, "serveurdenoms") ||
			strings.Contains(normalized, "servidordenombres") ||
			(strings.Contains(normalized, "dns") && !strings.Contains(normalized, "dnssec")) {
			if ns := firstToken(value); isValidNameserver(ns) {
				result.Nameservers = appendUnique(result.Nameservers, ns)
			}
		}

		if v := matchLabelValue(line, statusLinePatterns); v != "" && !isEmptyFieldValue(v) {
			for _, s := range splitStatuses(v) {
				result.Statuses = appendUnique(result.Statuses, s)
			}
		} else if normalized == "status" || normalized == "statut" || normalized == "estado" ||
			(strings.Contains(normalized, "status") &&
				!strings.Contains(normalized, "nameserverstatus") &&
				!strings.Contains(normalized, "dnssec")) {
			for _, s := range splitStatuses(value) {
				result.Statuses = appendUnique(result.Statuses, s)
			}
		}

		if currentSection != "" {
			isName := normalized == "nom" || normalized == "name" || normalized == "nombre" ||
				strings.Contains(normalized, "name") || strings.Contains(normalized, "nom")
			if isName && !reEmail.MatchString(value) && !strings.Contains(normalized, "domain") {
				setContactField(result, currentSection, "name", value)
			}
			if strings.Contains(normalized, "email") || strings.Contains(normalized, "courriel") ||
				strings.Contains(normalized, "mail") {
				if reEmail.MatchString(value) {
					setContactField(result, currentSection, "email", value)
				}
			}
			if strings.Contains(normalized, "org") || strings.Contains(normalized, "company") {
				setContactField(result, currentSection, "org", value)
			}
			continue
		}

		for _, ct := range contactKeyPatterns {
			if !anyKeyPatternMatches(normalized, ct.patterns) {
				continue
			}
			nextLine := ""
			if i+1 < len(lines) {
				nextLine = lines[i+1]
			}

			nameLike := strings.Contains(normalized, "name") ||
				strings.Contains(normalized, "nom") ||
				strings.Contains(normalized, "nombre") ||
				strings.Contains(normalized, "person") ||
				!strings.Contains(nextLine, ":")
			if nameLike && !strings.Contains(normalized, "org") && !strings.Contains(normalized, "domain") &&
				!reEmail.MatchString(value) {
				setContactField(result, ct.role, "name", value)
			}

			if strings.Contains(normalized, "email") || strings.Contains(normalized, "courriel") {
				if reEmail.MatchString(value) {
					setContactField(result, ct.role, "email", value)
				}
			}

			if strings.Contains(normalized, "org") || strings.Contains(normalized, "company") {
				setContactField(result, ct.role, "org", value)
			}
		}
	}

	// Free-form last resorts for registries that do not use field: value
	// lines at all.
	if result.Registrar == "" {
		if m := reFreeRegistrar.FindStringSubmatch(response); m != nil && !isEmptyFieldValue(m[1]) {
			result.Registrar = strings.TrimSpace(m[1])
		}
	}
	if result.CreatedAt == "" {
		if m := reFreeCreated.FindStringSubmatch(response); m != nil {
			if parsed, ok := ParseDate(strings.TrimSpace(m[1])); ok {
				result.CreatedAt = parsed
			}
		}
	}
	if len(result.Nameservers) == 0 {
		for _, m := range reFreeNS.FindAllString(response, -1) {
			ns := strings.ToLower(strings.TrimSpace(m))
			if isValidNameserver(ns) {
				result.Nameservers = appendUnique(result.Nameservers, ns)
			}
		}
	}

	// The latest of the candidate update dates wins; the canonical date form
	// sorts chronologically as text.
	if len(potentialUpdates) > 0 {
		sort.Sort(sort.Reverse(sort.StringSlice(potentialUpdates)))
		result.UpdatedAt = potentialUpdates[0]
	}

	return result
}

func setContactField(result *ParsedFields, role, field, value string) {
	target := map[string]*string{
		"registrant.name": &result.RegistrantName, "registrant.email": &result.RegistrantEmail, "registrant.org": &result.RegistrantOrg,
		"admin.name": &result.AdminName, "admin.email": &result.AdminEmail, "admin.org": &result.AdminOrg,
		"tech.name": &result.TechName, "tech.email": &result.TechEmail, "tech.org": &result.TechOrg,
	}[role+"."+field]
	if target != nil && *target == "" {
		*target = value
	}
}

// Record converts the parsed fields into a DomainRecord with the raw
// response attached under the "whois" key.
func (p *ParsedFields) Record(domain, raw string) *structs.DomainRecord {
	record := &structs.DomainRecord{
		Domain:      domain,
		Registrar:   p.Registrar,
		Statuses:    p.Statuses,
		Nameservers: p.Nameservers,
		Events: structs.Events{
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			ExpiresAt: p.ExpiresAt,
		},
		Raw:    map[string]json.RawMessage{"whois": structs.RawText(raw)},
		Source: structs.SourceWhois,
	}

	registrant := structs.Contact{Name: p.RegistrantName, Email: p.RegistrantEmail, Organization: p.RegistrantOrg}
	if !registrant.IsEmpty() {
		record.Contacts.Registrant = &registrant
	}
	admin := structs.Contact{Name: p.AdminName, Email: p.AdminEmail, Organization: p.AdminOrg}
	if !admin.IsEmpty() {
		record.Contacts.Admin = &admin
	}
	tech := structs.Contact{Name: p.TechName, Email: p.TechEmail, Organization: p.TechOrg}
	if !tech.IsEmpty() {
		record.Contacts.Tech = &tech
	}
	return record
}
