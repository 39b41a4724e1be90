package whois_tools

import (
	"regexp"
	"strings"
)

// fieldMappings maps lower-cased WHOIS field labels in English, French,
// Spanish, German, Portuguese, Chinese, Japanese, Korean and Russian to the
// canonical key vocabulary. Keys not present here fall back to a
// separator-stripped lookup, then to the stripped label itself.
var fieldMappings = map[string]string{
	// Domain name
	"domain name":       "domainname",
	"nom de domaine":    "domainname",
	"nombre de dominio": "domainname",
	"domänenname":       "domainname",
	"nome de domínio":   "domainname",
	"域名":                "domainname",
	"ドメイン名":             "domainname",
	"도메인":               "domainname",

	// Creation date
	"creation date":     "created",
	"created date":      "created",
	"registered date":   "created",
	"registration date": "created",
	"registration time": "created",
	"date de création":  "created",
	"fecha de creación": "created",
	"erstellungsdatum":  "created",
	"data de criação":   "created",
	"注册时间":              "created",
	"创建时间":              "created",
	"登録日":               "created",
	"등록일":               "created",
	"дата создания":     "created",

	// Update date
	"last modified":         "updated",
	"last updated":          "updated",
	"modified date":         "updated",
	"changed date":          "updated",
	"update date":           "updated",
	"dernière modification": "updated",
	"última modificación":   "updated",
	"letzte änderung":       "updated",
	"última modificação":    "updated",
	"更新时间":                  "updated",
	"最后更新":                  "updated",
	"修改时间":                  "updated",
	"更新日":                   "updated",
	"최근수정일":                 "updated",
	"обновлен":              "updated",

	// Expiry date
	"expiration date":     "expires",
	"expiry date":         "expires",
	"expire date":         "expires",
	"expires on":          "expires",
	"date d'expiration":   "expires",
	"fecha de expiración": "expires",
	"ablaufdatum":         "expires",
	"data de expiração":   "expires",
	"过期时间":                "expires",
	"到期时间":                "expires",
	"有効期限":                "expires",
	"만료일":                 "expires",
	"paid-till":           "expires",

	// Registrar
	"registrar":               "registrar",
	"bureau d'enregistrement": "registrar",
	"registrador":             "registrar",
	"registrierung":           "registrar",
	"注册商":                     "registrar",
	"レジストラ":                   "registrar",
	"등록기관":                    "registrar",
	"регистратор":             "registrar",

	// Status
	"status":  "status",
	"statut":  "status",
	"estado":  "status",
	"zustand": "status",
	"状态":      "status",
	"ステータス":   "status",
	"статус":  "status",

	// Nameserver
	"nameserver":          "nameserver",
	"name server":         "nameserver",
	"nserver":             "nameserver",
	"serveur de noms":     "nameserver",
	"servidor de nombres": "nameserver",
	"namenserver":         "nameserver",
	"servidor de nomes":   "nameserver",
	"域名服务器":               "nameserver",
	"ネームサーバー":             "nameserver",
	"сервер имен":         "nameserver",

	// Contact names
	"registrant name":          "registrantname",
	"nom du titulaire":         "registrantname",
	"nombre del titular":       "registrantname",
	"inhabername":              "registrantname",
	"nome do titular":          "registrantname",
	"注册人":                      "registrantname",
	"admin name":               "adminname",
	"nom de l'administrateur":  "adminname",
	"nombre del administrador": "adminname",
	"administratorname":        "adminname",
	"nome do administrador":    "adminname",
	"管理联系人":                    "adminname",
	"tech name":                "techname",
	"nom technique":            "techname",
	"nombre técnico":           "techname",
	"technischer name":         "techname",
	"nome técnico":             "techname",
	"技术联系人":                    "techname",

	// Email
	"email":              "email",
	"courriel":           "email",
	"correo electrónico": "email",
	"e-mail":             "email",
	"电子邮件":               "email",

	// Organization
	"organization": "organization",
	"organisation": "organization",
	"organización": "organization",
	"组织":           "organization",

	// Phone
	"phone":     "phone",
	"téléphone": "phone",
	"teléfono":  "phone",
	"telefon":   "phone",
	"电话":        "phone",

	// Address
	"address":   "address",
	"adresse":   "address",
	"dirección": "address",
	"地址":        "address",

	// Postal code
	"postal code":   "postalcode",
	"code postal":   "postalcode",
	"código postal": "postalcode",
	"postleitzahl":  "postalcode",
	"邮编":            "postalcode",

	// City
	"city":   "city",
	"ville":  "city",
	"ciudad": "city",
	"stadt":  "city",
	"cidade": "city",
	"城市":     "city",

	// Country
	"country": "country",
	"pays":    "country",
	"país":    "country",
	"land":    "country",
	"国家":      "country",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// stripSeparators removes spaces, hyphens and underscores so labels like
// "Registration-Date" and "registration_date" collapse to one form.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, s)
}

// strippedMappings is fieldMappings re-keyed with separators removed, built
// once so the fallback lookup stays a map access.
var strippedMappings = func() map[string]string {
	m := make(map[string]string, len(fieldMappings))
	for k, v := range fieldMappings {
		m[stripSeparators(k)] = v
	}
	return m
}()

// NormalizeFieldLabel maps the label part of a WHOIS line (everything
// before the first ':', or the whole line without one) to a canonical field
// key. Unknown labels come back separator-stripped and lower-cased; the
// function never fails.
func NormalizeFieldLabel(line string) string {
	label := line
	if idx := strings.Index(line, ":"); idx != -1 {
		label = line[:idx]
	}

	cleaned := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), " ")
	if key, ok := fieldMappings[cleaned]; ok {
		return key
	}

	stripped := stripSeparators(cleaned)
	if key, ok := strippedMappings[stripped]; ok {
		return key
	}
	return stripped
}
