package matcher

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return NewConfig(map[string]Metadata{
		"tempmail.com":     {},
		"guerrillamail.de": {"source": "bundled"},
		"spam4.me":         {},
	})
}

func TestIsFakeDomainExactMatch(t *testing.T) {
	cfg := testConfig()

	for _, k := range []string{"tempmail.com", "guerrillamail.de", "spam4.me"} {
		got, ok := IsFakeDomain(k, cfg)
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestIsFakeDomainSubdomainMatch(t *testing.T) {
	cfg := testConfig()

	got, ok := IsFakeDomain("mail.tempmail.com", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	// Deep subdomains match too.
	got, ok = IsFakeDomain("deep.sub.tempmail.com", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	// A bare leading dot has no label before the suffix.
	_, ok = IsFakeDomain(".tempmail.com", cfg)
	assert.False(t, ok)
}

func TestIsFakeDomainNormalization(t *testing.T) {
	cfg := testConfig()

	got, ok := IsFakeDomain("  TEMPMAIL.COM  ", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	got, ok = IsFakeDomain("\tSub.TempMail.Com\n", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	// Internal whitespace is kept and breaks the match.
	_, ok = IsFakeDomain("temp mail.com", cfg)
	assert.False(t, ok)
}

func TestIsFakeDomainSuffixAnchoring(t *testing.T) {
	cfg := testConfig()

	// A configured domain appearing as a prefix does not count.
	_, ok := IsFakeDomain("tempmail.com.fake.org", cfg)
	assert.False(t, ok)

	// Neither does a run-on hostname without the dot boundary.
	_, ok = IsFakeDomain("notatempmail.com", cfg)
	assert.False(t, ok)

	_, ok = IsFakeDomain("xtempmail.com", cfg)
	assert.False(t, ok)
}

func TestIsFakeDomainNoMatch(t *testing.T) {
	cfg := testConfig()

	for _, domain := range []string{"", "   ", "example.com", "mail.example.com", "tempmail.org"} {
		_, ok := IsFakeDomain(domain, cfg)
		assert.False(t, ok, "domain %q should not match", domain)
	}
}

func TestIsFakeDomainDefaultConfig(t *testing.T) {
	got, ok := IsFakeDomain("mailinator.com", nil)
	require.True(t, ok)
	assert.Equal(t, "mailinator.com", got)

	got, ok = IsFakeDomain("anything.mailinator.com", nil)
	require.True(t, ok)
	assert.Equal(t, "mailinator.com", got)

	_, ok = IsFakeDomain("gmail.com", nil)
	assert.False(t, ok)
}

func TestIsFakeDomainOverlappingKeysDeterministic(t *testing.T) {
	// A host under both keys resolves to "sub.tempmail.com" on every
	// call: it sorts before "tempmail.com" and first match wins.
	cfg := NewConfig(map[string]Metadata{
		"sub.tempmail.com": {},
		"tempmail.com":     {},
	})

	first, ok := IsFakeDomain("x.sub.tempmail.com", cfg)
	require.True(t, ok)
	assert.Equal(t, "sub.tempmail.com", first)

	for i := 0; i < 20; i++ {
		got, ok := IsFakeDomain("x.sub.tempmail.com", cfg)
		require.True(t, ok)
		assert.Equal(t, first, got)
	}

	// Hosts under only one of the keys are unaffected by the overlap.
	got, ok := IsFakeDomain("y.tempmail.com", cfg)
	require.True(t, ok)
	assert.Equal(t, "tempmail.com", got)
}

func TestIsFakeEmail(t *testing.T) {
	cfg := testConfig()

	got, ok := IsFakeEmail("user.name+tag@tempmail.com", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	got, ok = IsFakeEmail("someone@sub.guerrillamail.de", cfg)
	assert.True(t, ok)
	assert.Equal(t, "guerrillamail.de", got)

	_, ok = IsFakeEmail("user@example.com", cfg)
	assert.False(t, ok)
}

func TestIsFakeEmailMalformed(t *testing.T) {
	cfg := testConfig()

	// No "@" at all, "@" first, empty input.
	for _, email := range []string{"", "tempmail.com", "@tempmail.com", "@"} {
		_, ok := IsFakeEmail(email, cfg)
		assert.False(t, ok, "email %q should not match", email)
	}

	// Multiple "@": the candidate domain keeps the second "@" and can
	// never equal a clean key, so the address falls out as a non-match.
	_, ok := IsFakeEmail("user@name@tempmail.com", cfg)
	assert.False(t, ok)
}

func TestIsFakeEmailAgreesWithIsFakeDomain(t *testing.T) {
	cfg := testConfig()

	for _, domain := range []string{"tempmail.com", "sub.tempmail.com", "example.com", "spam4.me"} {
		wantMatch, wantOK := IsFakeDomain(domain, cfg)
		gotMatch, gotOK := IsFakeEmail("local.part"+"@"+domain, cfg)
		assert.Equal(t, wantOK, gotOK, "domain %q", domain)
		assert.Equal(t, wantMatch, gotMatch, "domain %q", domain)
	}
}

func TestIsPlusAddressingEmail(t *testing.T) {
	assert.True(t, IsPlusAddressingEmail("user+tag@example.com"))
	assert.True(t, IsPlusAddressingEmail("a+b@example.com"))
	assert.True(t, IsPlusAddressingEmail("user+tag@example+domain.com"))
	assert.True(t, IsPlusAddressingEmail("user +tag@example.com"))

	assert.False(t, IsPlusAddressingEmail("user@example.com"))
	// Plus only in the domain part does not count.
	assert.False(t, IsPlusAddressingEmail("user@example+domain.com"))
	assert.False(t, IsPlusAddressingEmail(""))
	assert.False(t, IsPlusAddressingEmail("userexample.com"))
	assert.False(t, IsPlusAddressingEmail("@example.com"))
}

func TestPlusLocalPartOnlyPlus(t *testing.T) {
	// "+" alone before the "@" is still a local part containing "+".
	assert.True(t, IsPlusAddressingEmail("+@example.com"))
	assert.True(t, IsPlusAddressingEmail("+tag@example.com"))
}

func TestMetadataIsOpaque(t *testing.T) {
	// Matching only looks at key presence, whatever the metadata shape.
	cfg := NewConfig(map[string]Metadata{
		"tempmail.com": nil,
		"spam4.me":     {"score": 42, "tags": []string{"burner"}},
	})

	got, ok := IsFakeDomain("tempmail.com", cfg)
	assert.True(t, ok)
	assert.Equal(t, "tempmail.com", got)

	got, ok = IsFakeDomain("x.spam4.me", cfg)
	assert.True(t, ok)
	assert.Equal(t, "spam4.me", got)
}

func TestDefaultDatasetShape(t *testing.T) {
	require.Greater(t, DefaultDomainCount(), 0)

	for k := range DefaultConfig().Domains {
		assert.Equal(t, strings.ToLower(k), k, "dataset keys must be lowercase")
		assert.Equal(t, strings.TrimSpace(k), k, "dataset keys must be trimmed")
		assert.NotEmpty(t, k)
	}
}

func TestConcurrentMatching(t *testing.T) {
	cfg := testConfig()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := IsFakeDomain("sub.tempmail.com", cfg)
				assert.True(t, ok)
				assert.Equal(t, "tempmail.com", got)
				_, ok = IsFakeEmail("user@example.com", cfg)
				assert.False(t, ok)
			}
		}()
	}
	wg.Wait()
}
