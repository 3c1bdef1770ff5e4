package airmon

import "regexp"

// enabledPattern matches airmon-ng's "<verb> mode enabled on <iface>" line.
// Real airmon-ng decorates it, e.g.
//
//	(mac80211 monitor mode vif enabled for [phy0]wlan0 on [phy0]wlan0mon)
//
// so the optional "vif", "for ..." and "[phyN]" parts are accepted too.
var enabledPattern = regexp.MustCompile(`(\w+) mode (?:vif )?enabled (?:for \S+ )?on (?:\[\w+\])?(\w+)`)

// ParseEnabledInterface extracts the mode verb and interface name from
// airmon-ng start/stop output. ok is false if no such line is present.
func ParseEnabledInterface(output string) (verb, iface string, ok bool) {
	m := enabledPattern.FindStringSubmatch(output)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
