package whois_tools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps English, French, Spanish, German and Portuguese month
// names and abbreviations (lower-cased) to their month number. WHOIS
// registries emit all of these.
var monthNames = map[string]time.Month{
	// English
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,

	// French
	"janvier": 1, "janv": 1,
	"février": 2, "fevrier": 2, "fév": 2, "fev": 2,
	"mars":  3,
	"avril": 4, "avr": 4,
	"mai":     5,
	"juin":    6,
	"juillet": 7, "juil": 7,
	"août": 8, "aout": 8,
	"septembre": 9,
	"octobre":   10,
	"novembre":  11,
	"décembre":  12, "decembre": 12, "déc": 12,

	// Spanish
	"enero": 1, "ene": 1,
	"febrero": 2,
	"marzo":   3,
	"abril":   4, "abr": 4,
	"mayo":   5,
	"junio":  6,
	"julio":  7,
	"agosto": 8, "ago": 8,
	"septiembre": 9,
	"octubre":    10,
	"noviembre":  11,
	"diciembre":  12, "dic": 12,

	// German
	"januar": 1, "jän": 1, "jaen": 1,
	"februar": 2,
	"märz":    3, "maerz": 3, "mär": 3, "maer": 3,
	"juni":    6,
	"juli":    7,
	"oktober": 10, "okt": 10,
	"dezember": 12, "dez": 12,

	// Portuguese
	"janeiro":   1,
	"fevereiro": 2,
	"março":     3, "marco": 3,
	"maio":     5,
	"junho":    6,
	"julho":    7,
	"setembro": 9, "set": 9,
	"outubro": 10, "out": 10,
	"novembro": 11,
	"dezembro": 12,
}

var (
	reISO         = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2}):(\d{2})(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?)?`)
	reCJK         = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日(?:\s*(\d{2}):(\d{2}):(\d{2}))?`)
	reDayMonName  = regexp.MustCompile(`^(\d{1,2})[-/\s]([\p{L}]+)[-/\s](\d{4})(?:\s+(\d{2}):(\d{2}):(\d{2}))?`)
	reMonNameDay  = regexp.MustCompile(`^([\p{L}]+)[\s,]+(\d{1,2})[\s,]+(\d{4})`)
	reDotDMY      = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})(?:\s+(\d{2}):(\d{2}):(\d{2}))?`)
	reDotYMD      = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})(?:\s+(\d{2}):(\d{2}):(\d{2}))?`)
	reCompactFull = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})`)
	reCompactDate = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})`)
	reSlash       = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	reOrdinal     = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)`)
)

// genericLayouts is the last-resort layout list for dates no structured rule
// matched, tried in order.
var genericLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2 January 2006",
	"January 2, 2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
	"2006/01/02",
	"2006.01.02",
}

// ParseDate converts a date string in any of the formats seen across RDAP
// and WHOIS registries to the canonical "YYYY-MM-DD HH:MM:SS" form. Rules
// are tried in a fixed order; the first match wins. A string no rule matches
// yields ok == false, never an error: callers treat an unparsed date as
// unknown.
func ParseDate(s string) (string, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", false
	}

	if m := reISO.FindStringSubmatch(cleaned); m != nil {
		return makeDate(m[1], m[2], m[3], m[4], m[5], m[6])
	}

	if m := reCJK.FindStringSubmatch(cleaned); m != nil {
		return makeDate(m[1], m[2], m[3], m[4], m[5], m[6])
	}

	if m := reDayMonName.FindStringSubmatch(cleaned); m != nil {
		if month, ok := monthNames[strings.ToLower(m[2])]; ok {
			return makeDate(m[3], strconv.Itoa(int(month)), m[1], m[4], m[5], m[6])
		}
	}

	if m := reMonNameDay.FindStringSubmatch(cleaned); m != nil {
		if month, ok := monthNames[strings.ToLower(m[1])]; ok {
			return makeDate(m[3], strconv.Itoa(int(month)), m[2], "", "", "")
		}
	}

	if m := reDotDMY.FindStringSubmatch(cleaned); m != nil {
		return makeDate(m[3], m[2], m[1], m[4], m[5], m[6])
	}

	if m := reDotYMD.FindStringSubmatch(cleaned); m != nil {
		return makeDate(m[1], m[2], m[3], m[4], m[5], m[6])
	}

	if m := reCompactFull.FindStringSubmatch(cleaned); m != nil {
		if out, ok := makeDate(m[1], m[2], m[3], m[4], m[5], m[6]); ok {
			return out, true
		}
	}

	if m := reCompactDate.FindStringSubmatch(cleaned); m != nil {
		if out, ok := makeDate(m[1], m[2], m[3], "", "", ""); ok {
			return out, true
		}
	}

	if m := reSlash.FindStringSubmatch(cleaned); m != nil {
		// DD/MM/YYYY is the more common form internationally; fall back to
		// MM/DD/YYYY when day-first does not produce a real date.
		if out, ok := makeDate(m[3], m[2], m[1], "", "", ""); ok {
			return out, true
		}
		if out, ok := makeDate(m[3], m[1], m[2], "", "", ""); ok {
			return out, true
		}
	}

	return parseGeneric(cleaned)
}

// parseGeneric is the bounded last-resort pass: ordinal suffixes are
// stripped ("30th June 2003") and a small layout list is tried. Years
// outside 1990-2100 are rejected as misparses.
func parseGeneric(s string) (string, bool) {
	stripped := reOrdinal.ReplaceAllString(s, "$1")

	for _, layout := range genericLayouts {
		t, err := time.Parse(layout, stripped)
		if err != nil {
			continue
		}
		if t.Year() <= 1990 || t.Year() >= 2100 {
			continue
		}
		return formatCanonical(t), true
	}
	return "", false
}

// makeDate assembles and validates date components given as strings. The
// round-trip through time.Date catches out-of-range components, which
// normalize instead of failing (e.g. month 13 becomes January).
func makeDate(year, month, day, hour, minute, second string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return "", false
	}

	var h, mi, sec int
	if hour != "" {
		if h, err = strconv.Atoi(hour); err != nil {
			return "", false
		}
		if mi, err = strconv.Atoi(minute); err != nil {
			return "", false
		}
		if sec, err = strconv.Atoi(second); err != nil {
			return "", false
		}
	}

	t := time.Date(y, time.Month(mo), d, h, mi, sec, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d ||
		t.Hour() != h || t.Minute() != mi || t.Second() != sec {
		return "", false
	}
	return formatCanonical(t), true
}

func formatCanonical(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
