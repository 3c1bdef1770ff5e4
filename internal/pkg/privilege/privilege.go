// Package privilege decides whether the process may reconfigure network
// interfaces and services.
package privilege

import (
	"runtime"

	"killshot/internal/types"
)

// Identity is the view of the running process used by Check.
type Identity interface {
	// EffectiveUID returns the effective user id, or -1 where there is none
	EffectiveUID() int

	// IsAdministrator reports membership of the built-in Administrators group
	IsAdministrator() (bool, error)
}

var posixSystems = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"hurd":      true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// Check decides privilege for an identity on the given GOOS. POSIX systems
// require effective uid 0. Windows requires Administrators membership, and a
// failed membership lookup counts as unprivileged. Any other GOOS yields a
// *types.PlatformError.
func Check(goos string, id Identity) (bool, error) {
	switch {
	case posixSystems[goos]:
		return id.EffectiveUID() == 0, nil
	case goos == "windows":
		admin, err := id.IsAdministrator()
		if err != nil {
			return false, nil
		}
		return admin, nil
	default:
		return false, &types.PlatformError{GOOS: goos}
	}
}

// HasRequiredPrivileges checks the current process.
func HasRequiredPrivileges() (bool, error) {
	return Check(runtime.GOOS, processIdentity{})
}

type processIdentity struct{}
