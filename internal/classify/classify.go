// Package classify combines the fake-domain matcher with the offline
// local-part and provider signals into a single classification result.
package classify

import (
	"strings"
	"time"

	"github.com/nephila016/fakefilter/internal/debug"
	"github.com/nephila016/fakefilter/matcher"
)

// Verdict summarizes a classification.
type Verdict string

const (
	// VerdictFake marks addresses on a known disposable domain.
	VerdictFake Verdict = "fake"
	// VerdictSuspect marks addresses that are not disposable but carry
	// a weaker fraud signal (plus addressing, role account).
	VerdictSuspect Verdict = "suspect"
	// VerdictClean marks addresses with no signal.
	VerdictClean Verdict = "clean"
)

// Result contains all classification signals for one address.
type Result struct {
	Email     string  `json:"email"`
	LocalPart string  `json:"local_part"`
	Domain    string  `json:"domain"`
	Verdict   Verdict `json:"verdict"`

	Fake          bool   `json:"fake"`
	MatchedDomain string `json:"matched_domain,omitempty"`

	PlusAddressing bool `json:"plus_addressing"`
	RoleAccount    bool `json:"role_account"`
	FreeProvider   bool `json:"free_provider"`

	CheckedAt time.Time `json:"checked_at"`
}

// Options toggles the supplementary checks. The fake-domain and
// plus-addressing checks always run.
type Options struct {
	CheckRole         bool
	CheckFreeProvider bool
}

// DefaultOptions enables all checks.
func DefaultOptions() Options {
	return Options{CheckRole: true, CheckFreeProvider: true}
}

// Classifier classifies addresses against a domain config.
type Classifier struct {
	cfg  *matcher.Config
	opts Options
}

// New creates a Classifier. A nil config uses the bundled dataset.
func New(cfg *matcher.Config, opts Options) *Classifier {
	if cfg == nil {
		cfg = matcher.DefaultConfig()
	}
	return &Classifier{cfg: cfg, opts: opts}
}

// Classify runs all enabled checks on an email address. Addresses the
// matcher cannot split (no "@", or "@" first) come back with every
// signal false and a clean verdict, matching the binary contract of
// the matcher itself.
func (c *Classifier) Classify(email string) *Result {
	log := debug.GetLogger()

	result := &Result{
		Email:     email,
		CheckedAt: time.Now(),
	}

	if i := strings.Index(email, "@"); i > 0 {
		result.LocalPart = email[:i]
		result.Domain = email[i+1:]
	}

	if match, ok := matcher.IsFakeEmail(email, c.cfg); ok {
		result.Fake = true
		result.MatchedDomain = match
		log.Info("CLASSIFY", "Disposable domain matched: %s -> %s", email, match)
	}

	result.PlusAddressing = matcher.IsPlusAddressingEmail(email)
	if result.PlusAddressing {
		log.Detail("CLASSIFY", "Plus addressing detected: %s", email)
	}

	if c.opts.CheckRole && result.LocalPart != "" {
		result.RoleAccount = IsRoleAccount(result.LocalPart)
		if result.RoleAccount {
			log.Detail("CLASSIFY", "Role account detected: %s", result.LocalPart)
		}
	}

	if c.opts.CheckFreeProvider && result.Domain != "" {
		result.FreeProvider = IsFreeProvider(result.Domain)
		if result.FreeProvider {
			log.Trace("CLASSIFY", "Free provider: %s", result.Domain)
		}
	}

	result.Verdict = verdict(result)
	return result
}

// ClassifyDomain runs the domain-level checks only.
func (c *Classifier) ClassifyDomain(domain string) *Result {
	result := &Result{
		Email:     domain,
		Domain:    domain,
		CheckedAt: time.Now(),
	}

	if match, ok := matcher.IsFakeDomain(domain, c.cfg); ok {
		result.Fake = true
		result.MatchedDomain = match
	}
	if c.opts.CheckFreeProvider {
		result.FreeProvider = IsFreeProvider(domain)
	}

	result.Verdict = verdict(result)
	return result
}

func verdict(r *Result) Verdict {
	switch {
	case r.Fake:
		return VerdictFake
	case r.PlusAddressing || r.RoleAccount:
		return VerdictSuspect
	default:
		return VerdictClean
	}
}

// Summary returns a one-line human-readable description.
func (r *Result) Summary() string {
	switch r.Verdict {
	case VerdictFake:
		return "Disposable address (matched " + r.MatchedDomain + ")"
	case VerdictSuspect:
		reasons := make([]string, 0, 2)
		if r.PlusAddressing {
			reasons = append(reasons, "plus addressing")
		}
		if r.RoleAccount {
			reasons = append(reasons, "role account")
		}
		return "Suspect: " + strings.Join(reasons, ", ")
	default:
		return "No fraud signal"
	}
}
