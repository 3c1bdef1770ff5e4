//go:build !unix && !windows

package privilege

import "errors"

func (processIdentity) EffectiveUID() int {
	return -1
}

func (processIdentity) IsAdministrator() (bool, error) {
	return false, errors.New("not supported")
}
