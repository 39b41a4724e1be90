package server_lists

// TLDToWhoisServers maps a TLD to the ordered list of WHOIS server hostnames
// for its registry. Servers are tried strictly in order, one at a time;
// registries rate-limit aggressively so the client never queries them in
// parallel. Compound keys ("co.uk") are matched before the bare TLD.
var TLDToWhoisServers = map[string][]string{
	// Generic TLDs
	"com":  {"whois.verisign-grs.com"},
	"net":  {"whois.verisign-grs.com"},
	"org":  {"whois.publicinterestregistry.org", "whois.pir.org"},
	"info": {"whois.nic.info"},
	"biz":  {"whois.nic.biz"},
	"name": {"whois.nic.name"},
	"pro":  {"whois.nic.pro"},
	"mobi": {"whois.nic.mobi"},
	"asia": {"whois.nic.asia"},
	"edu":  {"whois.educause.edu"},
	"gov":  {"whois.dotgov.gov"},
	"int":  {"whois.iana.org"},

	// New gTLDs
	"app":     {"whois.nic.google"},
	"dev":     {"whois.nic.google"},
	"page":    {"whois.nic.google"},
	"xyz":     {"whois.nic.xyz"},
	"top":     {"whois.nic.top"},
	"online":  {"whois.nic.online"},
	"site":    {"whois.nic.site"},
	"tech":    {"whois.nic.tech"},
	"store":   {"whois.nic.store"},
	"space":   {"whois.nic.space"},
	"website": {"whois.nic.website"},
	"host":    {"whois.nic.host"},
	"fun":     {"whois.nic.fun"},
	"club":    {"whois.nic.club"},
	"blog":    {"whois.nic.blog"},
	"cloud":   {"whois.nic.cloud"},

	// Popular ccTLDs run as generics
	"io": {"whois.nic.io"},
	"ai": {"whois.nic.ai"},
	"co": {"whois.nic.co"},
	"me": {"whois.nic.me", "whois.meregistry.net", "whois.iana.org"},
	"tv": {"whois.nic.tv"},
	"cc": {"whois.nic.cc"},
	"gg": {"whois.gg"},
	"je": {"whois.je"},
	"im": {"whois.nic.im"},
	"la": {"whois.nic.la"},
	"sh": {"whois.nic.sh"},
	"ac": {"whois.nic.ac"},
	"ws": {"whois.website.ws"},
	"to": {"whois.tonic.to"},
	"st": {"whois.nic.st"},
	"ly": {"whois.nic.ly"},

	// Country code TLDs
	"uk":     {"whois.nic.uk"},
	"co.uk":  {"whois.nic.uk"},
	"org.uk": {"whois.nic.uk"},
	"me.uk":  {"whois.nic.uk"},
	"de":     {"whois.denic.de"},
	"fr":     {"whois.nic.fr"},
	"it":     {"whois.nic.it"},
	"es":     {"whois.nic.es"},
	"nl":     {"whois.domain-registry.nl"},
	"be":     {"whois.dns.be"},
	"ch":     {"whois.nic.ch"},
	"li":     {"whois.nic.li"},
	"at":     {"whois.nic.at"},
	"se":     {"whois.iis.se"},
	"no":     {"whois.norid.no"},
	"dk":     {"whois.punktum.dk", "whois.dk-hostmaster.dk"},
	"fi":     {"whois.fi"},
	"pl":     {"whois.dns.pl"},
	"cz":     {"whois.nic.cz"},
	"ru":     {"whois.tcinet.ru"},
	"su":     {"whois.tcinet.ru"},
	"ua":     {"whois.ua"},
	"jp":     {"whois.jprs.jp"},
	"co.jp":  {"whois.jprs.jp"},
	"ne.jp":  {"whois.jprs.jp"},
	"cn":     {"whois.cnnic.cn"},
	"com.cn": {"whois.cnnic.cn"},
	"net.cn": {"whois.cnnic.cn"},
	"org.cn": {"whois.cnnic.cn"},
	"in":     {"whois.registry.in"},
	"au":     {"whois.auda.org.au"},
	"com.au": {"whois.auda.org.au"},
	"net.au": {"whois.auda.org.au"},
	"nz":     {"whois.srs.net.nz"},
	"co.nz":  {"whois.srs.net.nz"},
	"br":     {"whois.registro.br"},
	"com.br": {"whois.registro.br"},
	"mx":     {"whois.mx"},
	"com.mx": {"whois.mx"},
	"ca":     {"whois.cira.ca"},
	"us":     {"whois.nic.us"},
	"kr":     {"whois.kr"},
	"co.kr":  {"whois.kr"},
	"tw":     {"whois.twnic.net.tw"},
	"com.tw": {"whois.twnic.net.tw"},
	"hk":     {"whois.hkirc.hk"},
	"com.hk": {"whois.hkirc.hk"},
	"sg":     {"whois.sgnic.sg"},
	"com.sg": {"whois.sgnic.sg"},
	"my":     {"whois.mynic.my"},
	"za":     {"whois.registry.net.za"},
	"co.za":  {"whois.registry.net.za"},
	"th":     {"whois.thnic.co.th"},
	"co.th":  {"whois.thnic.co.th"},
	"vn":     {"whois.vnnic.vn"},
	"ph":     {"whois.dot.ph"},
	"id":     {"whois.id"},
	"co.id":  {"whois.id"},
	"kz":     {"whois.nic.kz"},
	"by":     {"whois.cctld.by"},
	"ee":     {"whois.tld.ee"},
	"gr":     {"whois.nic.gr"},
	"hu":     {"whois.nic.hu"},
	"is":     {"whois.isnic.is"},
	"lv":     {"whois.nic.lv"},
	"lt":     {"whois.domreg.lt"},
	"lu":     {"whois.dns.lu"},
	"pt":     {"whois.dns.pt"},
	"ro":     {"whois.rotld.ro"},
	"rs":     {"whois.rnids.rs"},
	"si":     {"whois.register.si"},
	"sk":     {"whois.sk-nic.sk"},
	"tr":     {"whois.nic.tr"},
	"hr":     {"whois.dns.hr"},
	"il":     {"whois.isoc.org.il"},
	"co.il":  {"whois.isoc.org.il"},
	"ae":     {"whois.aeda.net.ae"},
	"sa":     {"whois.nic.net.sa"},
	"qa":     {"whois.registry.qa"},
	"ir":     {"whois.nic.ir"},
	"pk":     {"whois.pknic.net.pk"},
	"lk":     {"whois.nic.lk"},
	"ke":     {"whois.kenic.or.ke"},
	"ng":     {"whois.nic.net.ng"},
	"bn":     {"whois.bnnic.bn", "whois.bn", "whois.iana.org"},

	// IDN TLDs (punycode keys)
	"xn--fiqs8s":   {"whois.cnnic.cn"}, // .中国
	"xn--fiqz9s":   {"whois.cnnic.cn"}, // .中國
	"xn--3e0b707e": {"whois.kr"},       // .한국
	"xn--kprw13d":  {"whois.twnic.net.tw"},
	"xn--kpry57d":  {"whois.twnic.net.tw"},
	"xn--p1ai":     {"whois.tcinet.ru"}, // .рф
}
