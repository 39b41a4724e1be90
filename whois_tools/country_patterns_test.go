package whois_tools

import "testing"

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"example.cn", "CN"},
		{"example.com.cn", "CN"},
		{"example.рф", "RU"},
		{"example.co.uk", "UK"},
		{"example.jp", "JP"},
		{"example.com", ""},
		{"example.de", "DE"},
	}

	for _, tt := range tests {
		if got := DetectCountry(tt.domain); got != tt.want {
			t.Errorf("DetectCountry(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestParseWithCountryPatternsRU(t *testing.T) {
	response := "domain: EXAMPLE.RU\nregistrar: RU-CENTER-RU\ncreated: 2002-04-03T20:00:00Z\npaid till: 2025-04-04T21:00:00Z\nstate: REGISTERED\n"

	fields := parseWithCountryPatterns(response, "example.ru")
	if fields["registrar"] != "RU-CENTER-RU" {
		t.Errorf("registrar = %q", fields["registrar"])
	}
	if fields["expires"] != "2025-04-04T21:00:00Z" {
		t.Errorf("expires = %q", fields["expires"])
	}
	if fields["created"] != "2002-04-03T20:00:00Z" {
		t.Errorf("created = %q", fields["created"])
	}
}

func TestParseWithCountryPatternsFullWidthColon(t *testing.T) {
	response := "注册商：阿里云计算有限公司\n注册时间：2020-01-15 12:00:00\n过期时间：2026-01-15 12:00:00\n"

	fields := parseWithCountryPatterns(response, "example.cn")
	if fields["registrar"] != "阿里云计算有限公司" {
		t.Errorf("registrar = %q", fields["registrar"])
	}
	if fields["created"] != "2020-01-15 12:00:00" {
		t.Errorf("created = %q", fields["created"])
	}
	if fields["expires"] != "2026-01-15 12:00:00" {
		t.Errorf("expires = %q", fields["expires"])
	}
}

func TestParseWithCountryPatternsNoCountry(t *testing.T) {
	fields := parseWithCountryPatterns("Registrar: X\n", "example.com")
	if len(fields) != 0 {
		t.Errorf("expected empty map for non-ccTLD domain, got %v", fields)
	}
}
