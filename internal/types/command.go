package types

import "strings"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
}

// NewCommand builds a Command from a program name and its arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandResult holds the captured output of a finished process.
// A non-zero ExitCode is not an error on its own; callers decide.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r *CommandResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Diagnostic returns the most useful text to show when the command failed:
// stderr if present, stdout otherwise.
func (r *CommandResult) Diagnostic() string {
	if r == nil {
		return ""
	}
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}
