package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nephila016/fakefilter/matcher"
)

func testClassifier() *Classifier {
	cfg := matcher.NewConfig(map[string]matcher.Metadata{
		"tempmail.com": {},
		"yopmail.com":  {},
	})
	return New(cfg, DefaultOptions())
}

func TestClassifyFake(t *testing.T) {
	c := testClassifier()

	r := c.Classify("someone@tempmail.com")
	assert.True(t, r.Fake)
	assert.Equal(t, "tempmail.com", r.MatchedDomain)
	assert.Equal(t, VerdictFake, r.Verdict)
	assert.Equal(t, "someone", r.LocalPart)
	assert.Equal(t, "tempmail.com", r.Domain)

	r = c.Classify("someone@mail.yopmail.com")
	assert.True(t, r.Fake)
	assert.Equal(t, "yopmail.com", r.MatchedDomain)
}

func TestClassifySuspect(t *testing.T) {
	c := testClassifier()

	r := c.Classify("user+promo@example.com")
	assert.False(t, r.Fake)
	assert.True(t, r.PlusAddressing)
	assert.Equal(t, VerdictSuspect, r.Verdict)

	r = c.Classify("support@example.com")
	assert.True(t, r.RoleAccount)
	assert.Equal(t, VerdictSuspect, r.Verdict)
}

func TestClassifyClean(t *testing.T) {
	c := testClassifier()

	r := c.Classify("jane.doe@example.com")
	assert.False(t, r.Fake)
	assert.False(t, r.PlusAddressing)
	assert.False(t, r.RoleAccount)
	assert.Equal(t, VerdictClean, r.Verdict)
	assert.Equal(t, "No fraud signal", r.Summary())
}

func TestClassifyFreeProvider(t *testing.T) {
	c := testClassifier()

	r := c.Classify("jane.doe@gmail.com")
	assert.True(t, r.FreeProvider)
	assert.False(t, r.Fake)
	assert.Equal(t, VerdictClean, r.Verdict)
}

func TestClassifyUnsplittableAddress(t *testing.T) {
	c := testClassifier()

	for _, email := range []string{"", "no-at-sign", "@tempmail.com"} {
		r := c.Classify(email)
		assert.False(t, r.Fake, "email %q", email)
		assert.False(t, r.PlusAddressing, "email %q", email)
		assert.Equal(t, VerdictClean, r.Verdict, "email %q", email)
		assert.Empty(t, r.LocalPart)
	}
}

func TestClassifyOptionsDisabled(t *testing.T) {
	cfg := matcher.NewConfig(map[string]matcher.Metadata{"tempmail.com": {}})
	c := New(cfg, Options{})

	r := c.Classify("admin@gmail.com")
	assert.False(t, r.RoleAccount)
	assert.False(t, r.FreeProvider)
}

func TestClassifyDomain(t *testing.T) {
	c := testClassifier()

	r := c.ClassifyDomain("sub.tempmail.com")
	assert.True(t, r.Fake)
	assert.Equal(t, "tempmail.com", r.MatchedDomain)
	assert.Equal(t, VerdictFake, r.Verdict)

	r = c.ClassifyDomain("gmail.com")
	assert.False(t, r.Fake)
	assert.True(t, r.FreeProvider)
}

func TestIsRoleAccount(t *testing.T) {
	assert.True(t, IsRoleAccount("admin"))
	assert.True(t, IsRoleAccount("Support"))
	assert.True(t, IsRoleAccount("support-2"))
	assert.True(t, IsRoleAccount("billing.eu"))
	assert.True(t, IsRoleAccount("noreply1"))

	assert.False(t, IsRoleAccount("jane.doe"))
	assert.False(t, IsRoleAccount("administrative")) // "admin" + letter is a name, not a role
	assert.False(t, IsRoleAccount(""))
}

func TestIsFreeProvider(t *testing.T) {
	assert.True(t, IsFreeProvider("gmail.com"))
	assert.True(t, IsFreeProvider(" GMAIL.COM "))
	assert.False(t, IsFreeProvider("corp.example.com"))
	// Exact match only.
	assert.False(t, IsFreeProvider("mail.gmail.com"))

	require.Greater(t, FreeProviderCount(), 0)
	require.Greater(t, RoleAccountCount(), 0)
}
