package puzzle

import "strings"

// Role identifies one required file of a puzzle directory.
type Role int

// Required file roles.
const (
	// RoleChallenge is the problem statement source.
	RoleChallenge Role = iota
	// RoleSolutions holds the solution objects.
	RoleSolutions
	// RoleTest is the test source.
	RoleTest
)

var roleFileNames = [...]string{
	RoleChallenge: "challenge.kt",
	RoleSolutions: "solutions.kt",
	RoleTest:      "test.kt",
}

var roleNames = [...]string{
	RoleChallenge: "challenge",
	RoleSolutions: "solutions",
	RoleTest:      "test",
}

// Roles returns every required role in declaration order.
func Roles() []Role {
	return []Role{RoleChallenge, RoleSolutions, RoleTest}
}

// FileName returns the canonical on-disk file name for the role.
func (r Role) FileName() string {
	if !r.valid() {
		return ""
	}
	return roleFileNames[r]
}

// String returns the lower-case role name, e.g. "solutions".
func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRole converts a role name or canonical file name to a Role.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles() {
		if s == r.String() || s == r.FileName() {
			return r, true
		}
	}
	return 0, false
}

func (r Role) valid() bool {
	return r >= RoleChallenge && r <= RoleTest
}
