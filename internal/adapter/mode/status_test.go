//go:build unit

package mode

import (
	"testing"

	"killshot/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestParseMonitorModeStatus(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		iface  string
		expect types.Mode
	}{
		{
			name:   "MonitorLine",
			text:   "PHY\tInterface\tDriver\n\nwlan0  monitor mode vif enabled\n",
			iface:  "wlan0",
			expect: types.ModeMonitor,
		},
		{
			name:   "DecoratedLine",
			text:   "(mac80211 monitor mode vif enabled for [phy0]wlan0  monitor mode vif enabled)\n",
			iface:  "wlan0",
			expect: types.ModeMonitor,
		},
		{
			name:   "OtherInterfaceInMonitor",
			text:   "wlan1  monitor mode vif enabled\n",
			iface:  "wlan0",
			expect: types.ModeManaged,
		},
		{
			name:   "PrefixIsNotAMatch",
			text:   "xwlan0  monitor mode vif enabled\n",
			iface:  "wlan0",
			expect: types.ModeManaged,
		},
		{
			name:   "SingleSpace",
			text:   "wlan0 monitor mode vif enabled\n",
			iface:  "wlan0",
			expect: types.ModeManaged,
		},
		{
			name:   "NotListed",
			text:   "PHY\tInterface\tDriver\t\tChipset\n\nphy0\twlan0\t\tiwlwifi\t\tIntel Corporation\n",
			iface:  "wlan0",
			expect: types.ModeManaged,
		},
		{
			name:   "EmptyOutput",
			text:   "",
			iface:  "wlan0",
			expect: types.ModeManaged,
		},
		{
			name:   "EmptyName",
			text:   "  monitor mode vif enabled\n",
			iface:  "",
			expect: types.ModeManaged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseMonitorModeStatus(tt.text, tt.iface))
		})
	}
}
