package worker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nephila016/fakefilter/internal/classify"
	"github.com/nephila016/fakefilter/matcher"
)

func testClassifier() *classify.Classifier {
	cfg := matcher.NewConfig(map[string]matcher.Metadata{"tempmail.com": {}})
	return classify.New(cfg, classify.DefaultOptions())
}

func TestPoolProcessEmails(t *testing.T) {
	emails := make([]string, 0, 50)
	for i := 0; i < 25; i++ {
		emails = append(emails, fmt.Sprintf("user%d@example.com", i))
		emails = append(emails, fmt.Sprintf("user%d@tempmail.com", i))
	}

	pool := NewPool(testClassifier(), &PoolConfig{Workers: 4, BufferSize: 16})
	pool.Start()
	results := pool.ProcessEmails(emails)

	require.Len(t, results, len(emails))
	assert.Equal(t, int64(len(emails)), pool.Processed())
	assert.Equal(t, int64(25), pool.Flagged())

	// Results come back in input order.
	for i, r := range results {
		assert.Equal(t, emails[i], r.Email)
	}
}

func TestPoolCallback(t *testing.T) {
	pool := NewPool(testClassifier(), &PoolConfig{Workers: 2, BufferSize: 4})

	seen := make(chan string, 8)
	pool.SetCallback(func(r *classify.Result) {
		seen <- r.Email
	})

	pool.Start()
	results := pool.ProcessEmails([]string{"a@tempmail.com", "b@example.com"})
	close(seen)

	require.Len(t, results, 2)
	var callbacks []string
	for email := range seen {
		callbacks = append(callbacks, email)
	}
	assert.Len(t, callbacks, 2)
}

func TestPoolDefaultConfig(t *testing.T) {
	pool := NewPool(testClassifier(), nil)
	pool.Start()
	results := pool.ProcessEmails([]string{"user@tempmail.com"})

	require.Len(t, results, 1)
	assert.Equal(t, classify.VerdictFake, results[0].Verdict)
}
