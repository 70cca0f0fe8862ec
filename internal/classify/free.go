package classify

import "strings"

// Major free email providers. Exact-match only: a subdomain of a free
// provider is not itself a free mailbox host.
var freeProviderList = []string{
	// Google
	"gmail.com",
	"googlemail.com",

	// Microsoft
	"outlook.com",
	"hotmail.com",
	"live.com",
	"msn.com",

	// Yahoo
	"yahoo.com",
	"ymail.com",
	"yahoo.co.uk",
	"yahoo.fr",
	"yahoo.co.jp",

	// Apple
	"icloud.com",
	"me.com",
	"mac.com",

	// Proton
	"protonmail.com",
	"proton.me",
	"pm.me",

	// AOL
	"aol.com",
	"aim.com",

	// GMX and mail.com
	"gmx.com",
	"gmx.net",
	"gmx.de",
	"mail.com",

	// Yandex and Mail.ru
	"yandex.com",
	"yandex.ru",
	"mail.ru",
	"inbox.ru",

	// Chinese providers
	"qq.com",
	"163.com",
	"126.com",
	"foxmail.com",

	// Privacy-focused
	"tutanota.com",
	"tuta.io",
	"fastmail.com",
	"hushmail.com",

	// Zoho
	"zoho.com",
	"zohomail.com",

	// Regional
	"web.de",
	"t-online.de",
	"libero.it",
	"orange.fr",
	"laposte.net",
	"seznam.cz",
	"wp.pl",
	"naver.com",
	"daum.net",
	"rediffmail.com",
}

var freeProviders = make(map[string]struct{}, len(freeProviderList))

func init() {
	for _, d := range freeProviderList {
		freeProviders[d] = struct{}{}
	}
}

// IsFreeProvider reports whether a domain is a well-known free email
// provider.
func IsFreeProvider(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	_, ok := freeProviders[domain]
	return ok
}

// FreeProviderCount returns the size of the free-provider dataset.
func FreeProviderCount() int {
	return len(freeProviderList)
}
