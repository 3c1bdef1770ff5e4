//go:build unit

package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterAdapter_Confirm(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"EmptyDefaultsYes", "\n", true, true},
		{"EmptyDefaultsNo", "\n", false, false},
		{"EOFDefaultsYes", "", true, true},
		{"ExplicitYes", "Y\n", false, true},
		{"ExplicitYesWord", "yes\n", false, true},
		{"ExplicitNo", "n\n", true, false},
		{"Garbage", "maybe\n", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterAdapterWithIO(strings.NewReader(tc.input), &out)

			got, err := p.Confirm("Enable monitor mode on wlan0?", tc.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Enable monitor mode on wlan0?")
		})
	}
}

func TestPrompterAdapter_PromptHint(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterAdapterWithIO(strings.NewReader("\n"), &out)

	_, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.Equal(t, "Continue? [Y/n]: ", out.String())
}

func TestPrompterAdapter_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	p := &PrompterAdapter{in: strings.NewReader("n\n"), out: &out, interactive: false}

	got, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, out.String())
}
