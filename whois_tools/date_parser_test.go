package whois_tools

import "testing"

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// ISO 8601
		{"2024-03-15T10:30:00Z", "2024-03-15 10:30:00"},
		{"2024-03-15T10:30:00.123456Z", "2024-03-15 10:30:00"},
		{"2024-03-15T10:30:00+02:00", "2024-03-15 10:30:00"},
		{"2024-03-15", "2024-03-15 00:00:00"},
		{"2024-03-15 10:30:00", "2024-03-15 10:30:00"},

		// CJK numeric
		{"2024年3月15日", "2024-03-15 00:00:00"},
		{"2024年12月1日 08:05:09", "2024-12-01 08:05:09"},

		// Month names
		{"15-Mar-2024 10:30:00", "2024-03-15 10:30:00"},
		{"15-mar-2024", "2024-03-15 00:00:00"},
		{"15/Mar/2024", "2024-03-15 00:00:00"},
		{"March 15, 2024", "2024-03-15 00:00:00"},
		{"15-janvier-2024", "2024-01-15 00:00:00"},
		{"15-enero-2024", "2024-01-15 00:00:00"},
		{"15-dezember-2024", "2024-12-15 00:00:00"},
		{"15-outubro-2024", "2024-10-15 00:00:00"},

		// Dotted
		{"15.03.2024", "2024-03-15 00:00:00"},
		{"15.03.2024 10:30:00", "2024-03-15 10:30:00"},
		{"2024.3.15", "2024-03-15 00:00:00"},

		// Compact
		{"20240315", "2024-03-15 00:00:00"},
		{"20240315103000", "2024-03-15 10:30:00"},

		// Slash: day-first preferred, month-first fallback
		{"15/03/2024", "2024-03-15 00:00:00"},
		{"03/15/2024", "2024-03-15 00:00:00"},
		{"05/03/2024", "2024-03-05 00:00:00"},

		// Free-form last resort
		{"30th June 2003", "2003-06-30 00:00:00"},
		{"02-Jan-2006", "2006-01-02 00:00:00"},
	}

	for _, tt := range tests {
		got, ok := ParseDate(tt.input)
		if !ok {
			t.Errorf("ParseDate(%q): no result", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDateRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a date",
		"9999-99-99",
		"13/13/2024",
	}

	for _, input := range inputs {
		if got, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q) = %q, expected no result", input, got)
		}
	}
}
