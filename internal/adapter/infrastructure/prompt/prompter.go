// Package prompt provides the operator confirmation adapter implementation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"killshot/internal/port"

	"golang.org/x/term"
)

// PrompterAdapter is an adapter that implements the Prompter port on a terminal.
type PrompterAdapter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// Ensure PrompterAdapter implements the Prompter port
var _ port.Prompter = (*PrompterAdapter)(nil)

// NewPrompterAdapter creates a prompter on stdin/stderr. When stdin is not a
// terminal every question is answered with its default.
func NewPrompterAdapter() *PrompterAdapter {
	return &PrompterAdapter{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewPrompterAdapterWithIO creates an interactive prompter on the given streams.
func NewPrompterAdapterWithIO(in io.Reader, out io.Writer) *PrompterAdapter {
	return &PrompterAdapter{in: in, out: out, interactive: true}
}

// Confirm asks a yes/no question. Empty input selects the default.
func (p *PrompterAdapter) Confirm(question string, defaultYes bool) (bool, error) {
	if !p.interactive {
		return defaultYes, nil
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	if _, err := fmt.Fprintf(p.out, "%s %s: ", question, hint); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
