// Package rbac implements the role gate: a pure membership test mapping a
// session's role against an operation's allow-list.
package rbac

import "go.pilab.hu/partsdesk/domain"

// Allowed reports whether the role is in the allow-list.
func Allowed(role domain.Role, allow ...domain.Role) bool {
	for _, r := range allow {
		if r == role {
			return true
		}
	}
	return false
}
