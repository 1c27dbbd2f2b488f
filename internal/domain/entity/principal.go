// Package entity contains the core business objects of the project.
package entity

import "slices"

// Principal is the authenticated identity for a single request or a single
// token issuance. It has no persistent identity of its own; it is derived
// either from a credential check or from a verified token's claims.
type Principal struct {
	Username string
	Roles    []string
}

// HasRole reports whether the principal carries the named role.
func (p *Principal) HasRole(name string) bool {
	return slices.Contains(p.Roles, name)
}
