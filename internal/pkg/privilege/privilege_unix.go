//go:build unix

package privilege

import (
	"errors"

	"golang.org/x/sys/unix"
)

func (processIdentity) EffectiveUID() int {
	return unix.Geteuid()
}

func (processIdentity) IsAdministrator() (bool, error) {
	return false, errors.New("administrators group is a windows concept")
}
