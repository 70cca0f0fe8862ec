// Package matcher classifies email addresses and domains against a set
// of known disposable (fake) domains and detects plus addressing in the
// local part of an address.
//
// All functions are pure and safe for concurrent use: the domain
// configuration is read-only input and no global state is touched.
package matcher

import (
	"sort"
	"strings"
	"sync"
)

// Metadata is the opaque per-domain value carried by a Config. The
// matcher only cares about key presence; metadata is never inspected,
// so callers may attach whatever shape they like.
type Metadata map[string]interface{}

// Config maps known fake domains (lowercase) to their metadata.
// A Config is immutable once handed to the matcher.
type Config struct {
	Domains map[string]Metadata

	once sync.Once
	keys []string
}

// NewConfig builds a Config from a domain map.
func NewConfig(domains map[string]Metadata) *Config {
	return &Config{Domains: domains}
}

// domainKeys returns the config's domains in sorted order. Go map
// iteration is randomized, so the keys are sorted once and cached to
// keep match results deterministic for configs with overlapping
// domains (first match in sorted order wins).
func (c *Config) domainKeys() []string {
	c.once.Do(func() {
		c.keys = make([]string, 0, len(c.Domains))
		for k := range c.Domains {
			c.keys = append(c.keys, k)
		}
		sort.Strings(c.keys)
	})
	return c.keys
}

// IsFakeDomain reports whether domain is a known fake domain or a
// subdomain of one. On a match it returns the configured domain that
// matched; otherwise ok is false. A nil cfg falls back to the bundled
// default dataset.
//
// The input is lowercased and stripped of leading/trailing whitespace
// before matching. Internal whitespace is kept and participates in
// matching, so "temp mail.com" never matches "tempmail.com".
func IsFakeDomain(domain string, cfg *Config) (string, bool) {
	if domain == "" {
		return "", false
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	domain = strings.TrimSpace(strings.ToLower(domain))
	if domain == "" {
		return "", false
	}

	for _, k := range cfg.domainKeys() {
		if domain == k {
			return k, true
		}
		// Subdomain match: anchored dot-suffix with at least one
		// character before it, so ".tempmail.com" alone does not count
		// and neither does "tempmail.com.fake.org".
		if len(domain) > len(k)+1 && strings.HasSuffix(domain, "."+k) {
			return k, true
		}
	}
	return "", false
}

// IsFakeEmail extracts the domain of an email address and checks it
// with IsFakeDomain. The address is split on the first "@"; an address
// with no "@", or with "@" as its first character, never matches.
//
// Note that with more than one "@" the candidate domain keeps the extra
// "@" and everything after it ("user@name@tempmail.com" yields
// "name@tempmail.com"), which cannot equal or suffix-match a clean
// domain key. Multi-@ addresses therefore fall out as non-matches
// without explicit validation; callers relying on the binary contract
// should not expect a distinct error for them.
func IsFakeEmail(email string, cfg *Config) (string, bool) {
	_, domain, ok := splitAddress(email)
	if !ok {
		return "", false
	}
	return IsFakeDomain(domain, cfg)
}

// IsPlusAddressingEmail reports whether the local part of an email
// address (everything before the first "@") contains a "+". No
// normalization is applied; the literal substring decides. Addresses
// without a local part return false.
func IsPlusAddressingEmail(email string) bool {
	local, _, ok := splitAddress(email)
	if !ok {
		return false
	}
	return strings.Contains(local, "+")
}

// splitAddress splits an address on its first "@". ok is false when
// there is no "@" or no local part before it.
func splitAddress(email string) (local, domain string, ok bool) {
	i := strings.Index(email, "@")
	if i <= 0 {
		return "", "", false
	}
	return email[:i], email[i+1:], true
}
