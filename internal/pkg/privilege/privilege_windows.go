//go:build windows

package privilege

import "golang.org/x/sys/windows"

func (processIdentity) EffectiveUID() int {
	return -1
}

func (processIdentity) IsAdministrator() (bool, error) {
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false, err
	}

	token := windows.Token(0)
	return token.IsMember(sid)
}
