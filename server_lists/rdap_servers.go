package server_lists

// TLDToRdapServers maps a TLD to the ordered list of RDAP base URLs for its
// registry, following the IANA RDAP bootstrap registry. The first entry is
// the preferred server; later entries are alternates tried on 404 or soft
// failures. Keys may be compound ("co.uk" style keys are matched before the
// bare TLD by RdapServersFor).
var TLDToRdapServers = map[string][]string{
	// Generic TLDs
	"com":    {"https://rdap.verisign.com/com/v1/"},
	"net":    {"https://rdap.verisign.com/net/v1/"},
	"org":    {"https://rdap.publicinterestregistry.org/rdap/"},
	"info":   {"https://rdap.afilias-srs.net/rdap/info/"},
	"biz":    {"https://rdap.nic.biz/"},
	"name":   {"https://tld-rdap.verisign.com/name/v1/"},
	"pro":    {"https://rdap.nic.pro/"},
	"mobi":   {"https://rdap.nic.mobi/"},
	"asia":   {"https://rdap.nic.asia/"},
	"tel":    {"https://rdap.nic.tel/"},
	"travel": {"https://rdap.nic.travel/"},
	"xxx":    {"https://rdap.nic.xxx/"},
	"cat":    {"https://rdap.nic.cat/"},
	"jobs":   {"https://rdap.nic.jobs/"},
	"post":   {"https://rdap.nic.post/"},
	"aero":   {"https://rdap.nic.aero/"},
	"coop":   {"https://rdap.nic.coop/"},
	"museum": {"https://rdap.nic.museum/"},
	"edu":    {"https://rdap.educause.edu/"},
	"gov":    {"https://rdap.nic.gov/"},
	"int":    {"https://rdap.iana.org/"},
	"arpa":   {"https://rdap.iana.org/"},

	// Google registry
	"app":     {"https://www.registry.google/rdap/"},
	"dev":     {"https://www.registry.google/rdap/"},
	"page":    {"https://www.registry.google/rdap/"},
	"how":     {"https://www.registry.google/rdap/"},
	"new":     {"https://www.registry.google/rdap/"},
	"google":  {"https://www.registry.google/rdap/"},
	"youtube": {"https://www.registry.google/rdap/"},
	"gmail":   {"https://www.registry.google/rdap/"},
	"docs":    {"https://www.registry.google/rdap/"},
	"drive":   {"https://www.registry.google/rdap/"},
	"chrome":  {"https://www.registry.google/rdap/"},
	"android": {"https://www.registry.google/rdap/"},

	// New gTLDs
	"xyz":     {"https://rdap.centralnic.com/xyz/"},
	"top":     {"https://rdap.nic.top/"},
	"online":  {"https://rdap.centralnic.com/"},
	"site":    {"https://rdap.centralnic.com/"},
	"tech":    {"https://rdap.centralnic.com/"},
	"store":   {"https://rdap.centralnic.com/"},
	"space":   {"https://rdap.centralnic.com/"},
	"website": {"https://rdap.centralnic.com/"},
	"press":   {"https://rdap.centralnic.com/"},
	"host":    {"https://rdap.centralnic.com/"},
	"fun":     {"https://rdap.centralnic.com/"},
	"club":    {"https://rdap.nic.club/"},
	"blog":    {"https://rdap.nic.blog/"},
	"cloud":   {"https://rdap.nic.cloud/"},

	// Popular ccTLDs run as generics
	"io": {"https://rdap.nic.io/"},
	"ai": {"https://rdap.nic.ai/"},
	"co": {"https://rdap.nic.co/"},
	"me": {"https://rdap.nic.me/"},
	"tv": {"https://rdap.nic.tv/"},
	"cc": {"https://rdap.nic.cc/"},

	// Country code TLDs
	"uk": {"https://rdap.nominet.uk/"},
	"de": {"https://rdap.denic.de/"},
	"fr": {"https://rdap.nic.fr/"},
	"it": {"https://rdap.nic.it/"},
	"es": {"https://rdap.nic.es/"},
	"nl": {"https://rdap.sidn.nl/"},
	"be": {"https://rdap.dns.be/"},
	"ch": {"https://rdap.nic.ch/"},
	"li": {"https://rdap.nic.ch/"},
	"at": {"https://rdap.nic.at/"},
	"se": {"https://rdap.nic.se/"},
	"no": {"https://rdap.norid.no/"},
	"dk": {"https://rdap.dk-hostmaster.dk/"},
	"fi": {"https://rdap.fi/"},
	"pl": {"https://rdap.dns.pl/"},
	"cz": {"https://rdap.nic.cz/"},
	"ru": {"https://rdap.tcinet.ru/"},
	"su": {"https://rdap.tcinet.ru/"},
	"ua": {"https://rdap.ua/"},
	"jp": {"https://rdap.jprs.jp/"},
	"cn": {"https://rdap.cnnic.cn/"},
	"in": {"https://rdap.registry.in/"},
	"au": {"https://rdap.auda.org.au/"},
	"nz": {"https://rdap.srs.net.nz/"},
	"br": {"https://rdap.registro.br/"},
	"mx": {"https://rdap.mx/"},
	"ca": {"https://rdap.cira.ca/"},
	"us": {"https://rdap.nic.us/"},
	"kr": {"https://rdap.kr/"},
	"tw": {"https://rdap.twnic.tw/"},
	"hk": {"https://rdap.hkirc.hk/"},
	"sg": {"https://rdap.sgnic.sg/"},
	"my": {"https://rdap.mynic.my/"},
	"za": {"https://rdap.registry.net.za/"},
	"st": {"https://rdap.nic.st/"},
	"ly": {"https://rdap.nic.ly/"},
	"to": {"https://rdap.nic.to/"},
	"ws": {"https://rdap.nic.ws/"},
	"gg": {"https://rdap.gg/"},
	"je": {"https://rdap.je/"},
	"im": {"https://rdap.nic.im/"},
	"ac": {"https://rdap.nic.ac/"},
	"sh": {"https://rdap.nic.sh/"},
	"vc": {"https://rdap.nic.vc/"},
	"gs": {"https://rdap.nic.gs/"},
	"la": {"https://rdap.nic.la/"},
	"sc": {"https://rdap.nic.sc/"},
	"mn": {"https://rdap.nic.mn/"},
	"ag": {"https://rdap.nic.ag/"},
	"bz": {"https://rdap.nic.bz/"},
	"lc": {"https://rdap.nic.lc/"},
	"th": {"https://rdap.thnic.co.th/"},
	"vn": {"https://rdap.nic.vn/"},
	"ph": {"https://rdap.nic.ph/"},
	"id": {"https://rdap.id/"},
	"kz": {"https://rdap.nic.kz/"},
	"uz": {"https://rdap.cctld.uz/"},
	"by": {"https://rdap.cctld.by/"},
	"ee": {"https://rdap.tld.ee/"},
	"gr": {"https://rdap.nic.gr/"},
	"hu": {"https://rdap.nic.hu/"},
	"is": {"https://rdap.isnic.is/"},
	"lv": {"https://rdap.nic.lv/"},
	"lt": {"https://rdap.nic.lt/"},
	"lu": {"https://rdap.nic.lu/"},
	"pt": {"https://rdap.nic.pt/"},
	"ro": {"https://rdap.rotld.ro/"},
	"rs": {"https://rdap.rnids.rs/"},
	"si": {"https://rdap.register.si/"},
	"sk": {"https://rdap.sk-nic.sk/"},
	"tr": {"https://rdap.nic.tr/"},
	"hr": {"https://rdap.nic.hr/"},
	"il": {"https://rdap.isoc.org.il/"},
	"ae": {"https://rdap.aeda.net.ae/"},
	"sa": {"https://rdap.nic.net.sa/"},
	"qa": {"https://rdap.registry.qa/"},
	"ir": {"https://rdap.nic.ir/"},
	"pk": {"https://rdap.nic.pk/"},
	"lk": {"https://rdap.nic.lk/"},
	"ke": {"https://rdap.kenic.or.ke/"},
	"ng": {"https://rdap.nic.net.ng/"},
	"tn": {"https://rdap.ati.tn/"},
	"ma": {"https://rdap.iam.net.ma/"},
	"mu": {"https://rdap.nic.mu/"},
	"re": {"https://rdap.nic.re/"},
	"yt": {"https://rdap.nic.yt/"},
	"pm": {"https://rdap.nic.pm/"},
	"wf": {"https://rdap.nic.wf/"},
	"tf": {"https://rdap.nic.tf/"},
	"am": {"https://rdap.amnic.net/"},
	"ge": {"https://rdap.nic.ge/"},
	"md": {"https://rdap.nic.md/"},
	"mk": {"https://rdap.marnet.mk/"},
	"ax": {"https://rdap.ax/"},
	"fo": {"https://rdap.nic.fo/"},
	"gl": {"https://rdap.nic.gl/"},

	// IDN TLDs (punycode keys; input is punycode-encoded upstream)
	"xn--fiqs8s":   {"https://rdap.cnnic.cn/"}, // .中国
	"xn--fiqz9s":   {"https://rdap.cnnic.cn/"}, // .中國
	"xn--3e0b707e": {"https://rdap.kr/"},       // .한국
	"xn--kprw13d":  {"https://rdap.twnic.tw/"}, // .台湾
	"xn--kpry57d":  {"https://rdap.twnic.tw/"}, // .台灣
	"xn--55qx5d":   {"https://rdap.teleinfo.cn/"},
	"xn--vuq861b":  {"https://rdap.teleinfo.cn/"},
	"xn--p1ai":     {"https://rdap.tcinet.ru/"}, // .рф
}
