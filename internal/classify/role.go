package classify

import "strings"

// Local parts conventionally owned by a function rather than a person.
var roleLocalParts = map[string]struct{}{
	// Administrative
	"admin":      {},
	"postmaster": {},
	"hostmaster": {},
	"webmaster":  {},
	"root":       {},

	// Support and contact
	"support":  {},
	"help":     {},
	"helpdesk": {},
	"info":     {},
	"contact":  {},
	"hello":    {},
	"feedback": {},

	// Sales and marketing
	"sales":     {},
	"marketing": {},
	"press":     {},
	"media":     {},

	// Automated senders
	"noreply":       {},
	"no-reply":      {},
	"donotreply":    {},
	"do-not-reply":  {},
	"mailer-daemon": {},
	"bounce":        {},
	"bounces":       {},

	// Security and abuse
	"abuse":    {},
	"security": {},
	"privacy":  {},
	"legal":    {},

	// Finance and HR
	"billing":  {},
	"invoices": {},
	"accounts": {},
	"finance":  {},
	"hr":       {},
	"jobs":     {},
	"careers":  {},

	// Teams and lists
	"team":          {},
	"staff":         {},
	"office":        {},
	"newsletter":    {},
	"notifications": {},
	"alerts":        {},

	// Placeholders
	"test":    {},
	"demo":    {},
	"example": {},
	"nobody":  {},
	"mail":    {},
	"email":   {},
}

// IsRoleAccount reports whether a local part looks like a role account:
// either an exact role name, or a role name followed by a separator or
// digit ("support-2", "billing.eu").
func IsRoleAccount(localPart string) bool {
	localPart = strings.ToLower(strings.TrimSpace(localPart))
	if localPart == "" {
		return false
	}
	if _, ok := roleLocalParts[localPart]; ok {
		return true
	}

	for role := range roleLocalParts {
		if !strings.HasPrefix(localPart, role) {
			continue
		}
		switch c := localPart[len(role)]; {
		case c == '-' || c == '_' || c == '.':
			return true
		case c >= '0' && c <= '9':
			return true
		}
	}
	return false
}

// RoleAccountCount returns the size of the role dataset.
func RoleAccountCount() int {
	return len(roleLocalParts)
}
