package mode

import (
	"strings"

	"killshot/internal/types"
)

const monitorStatusSuffix = "  monitor mode vif enabled"

// ParseMonitorModeStatus inspects `airmon-ng status` output for
// "<name>  monitor mode vif enabled". The name must start at a field
// boundary so that "wlan0" does not match "xwlan0". Any other output,
// including output that does not mention the interface, is ModeManaged.
func ParseMonitorModeStatus(text, interfaceName string) types.Mode {
	if interfaceName == "" {
		return types.ModeManaged
	}
	needle := interfaceName + monitorStatusSuffix

	for _, line := range strings.Split(text, "\n") {
		rest := line
		for {
			idx := strings.Index(rest, needle)
			if idx < 0 {
				break
			}
			if idx == 0 || isBoundary(rest[idx-1]) {
				return types.ModeMonitor
			}
			rest = rest[idx+1:]
		}
	}
	return types.ModeManaged
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == ']' || c == '('
}
