package whois_tools

import (
	"regexp"
	"strings"
)

// countryPatterns holds per-registry field extraction rules for ccTLD WHOIS
// responses whose layout differs from the gTLD norm. For each field the
// patterns run in order and the first capture wins.
var countryPatterns = map[string]map[string][]*regexp.Regexp{
	// China (.cn, .中国, .公司, .网络). CNNIC uses full-width colons in its
	// localized output.
	"CN": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`注册商\s*：\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)sponsor\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)registration time\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`注册时间\s*：\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created date\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)updated date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)updated time\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`更新时间\s*：\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiration time\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`过期时间\s*：\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)expiry date\s*:\s*(.+?)(?:\n|$)`),
		},
		"status": {
			regexp.MustCompile(`(?i)status\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)domain status\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`状态\s*：\s*(.+?)(?:\n|$)`),
		},
		"nameserver": {
			regexp.MustCompile(`(?i)name server\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)nameserver\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)dns\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Russia (.ru, .рф). TCI reports the expiry as "paid till".
	"RU": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)регистратор\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)создан\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)changed\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)изменен\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)paid till\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)оплачен до\s*:\s*(.+?)(?:\n|$)`),
		},
		"status": {
			regexp.MustCompile(`(?i)status\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)статус\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// South Korea (.kr, .한국)
	"KR": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`등록기관\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)registered date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`등록일\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last updated date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`최근수정일\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`만료일\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Japan (.jp, .日本)
	"JP": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`名義人\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created on\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`登録年月日\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last modified on\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`最終更新日時\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`有効期限\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Germany (.de)
	"DE": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)registrierung\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)erstellungsdatum\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)changed\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)änderungsdatum\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expire date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)ablaufdatum\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// United Kingdom (.uk, .co.uk, .org.uk)
	"UK": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)registrar name\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)registered on\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created on\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last updated\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiry date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Brazil (.br)
	"BR": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)registrador\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)data de criação\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)data de última modificação\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)data de expiração\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Australia (.au, .com.au)
	"AU": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)tech contact organisation\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created date\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)updated date\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiry date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)renewal date\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Mexico (.mx)
	"MX": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created by registrar\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)creation date\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)modified by registrar\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)expire date\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// Canada (.ca)
	"CA": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)sponsor\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)creation date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created on\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)updated date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiry date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// India (.in)
	"IN": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)sponsoring registrar\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)created on\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)registration date\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last updated on\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)modified date\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)expiry date\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)status\s*expires\s*:\s*(.+?)(?:\n|$)`),
		},
	},

	// New Zealand (.nz)
	"NZ": {
		"registrar": {
			regexp.MustCompile(`(?i)registrar\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)registrar name\s*:\s*(.+?)(?:\n|$)`),
		},
		"created": {
			regexp.MustCompile(`(?i)registered\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)created date\s*:\s*(.+?)(?:\n|$)`),
		},
		"updated": {
			regexp.MustCompile(`(?i)last modified\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)updated date\s*:\s*(.+?)(?:\n|$)`),
		},
		"expires": {
			regexp.MustCompile(`(?i)registration expires\s*:\s*(.+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)expiration date\s*:\s*(.+?)(?:\n|$)`),
		},
	},
}

// countryTLDMap maps a country key in countryPatterns to the TLD labels
// (including IDN labels) that select it. Compound entries like "co.uk" are
// matched against the last two labels before the bare TLD is tried.
var countryTLDMap = map[string][]string{
	"CN": {"cn", "中国", "公司", "网络"},
	"RU": {"ru", "рф"},
	"KR": {"kr", "한국"},
	"JP": {"jp", "日本"},
	"DE": {"de"},
	"UK": {"uk", "co.uk", "org.uk"},
	"BR": {"br"},
	"AU": {"au", "com.au"},
	"MX": {"mx"},
	"CA": {"ca"},
	"IN": {"in"},
	"NZ": {"nz"},
}

// DetectCountry returns the country key for a domain's TLD, or "" when no
// country-specific rules apply.
func DetectCountry(domain string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSuffix(domain, ".")), ".")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}

	tld := parts[len(parts)-1]
	if len(parts) > 1 {
		secondLevel := parts[len(parts)-2] + "." + tld
		for country, tlds := range countryTLDMap {
			for _, t := range tlds {
				if t == secondLevel {
					return country
				}
			}
		}
	}
	for country, tlds := range countryTLDMap {
		for _, t := range tlds {
			if t == tld {
				return country
			}
		}
	}
	return ""
}

// CountryPatternsFor returns the field pattern table for a domain's
// registry, or nil when none applies.
func CountryPatternsFor(domain string) map[string][]*regexp.Regexp {
	country := DetectCountry(domain)
	if country == "" {
		return nil
	}
	return countryPatterns[country]
}

// parseWithCountryPatterns extracts fields from a raw WHOIS response using
// the domain's country rules. Per field the first matching pattern wins.
// Domains without country rules yield an empty map.
func parseWithCountryPatterns(response, domain string) map[string]string {
	patterns := CountryPatternsFor(domain)
	result := make(map[string]string)
	for field, list := range patterns {
		for _, re := range list {
			if m := re.FindStringSubmatch(response); m != nil && strings.TrimSpace(m[1]) != "" {
				result[field] = strings.TrimSpace(m[1])
				break
			}
		}
	}
	return result
}
