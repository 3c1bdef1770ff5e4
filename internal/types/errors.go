package types

import (
	"errors"
	"fmt"
)

var (
	ErrToolMissing         = errors.New("required tool is not installed")
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
	ErrTransitionFailed    = errors.New("mode transition failed")
	ErrService             = errors.New("service operation failed")
	ErrInterfaceNotFound   = errors.New("interface not found")
	ErrEmptyInterface      = errors.New("interface name is empty")
)

// ToolMissingError reports that an external binary could not be found.
// It is fatal for the whole run.
type ToolMissingError struct {
	Tool string
	Err  error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("%s is not installed: %v", e.Tool, e.Err)
}

func (e *ToolMissingError) Unwrap() error { return e.Err }

func (e *ToolMissingError) Is(target error) bool { return target == ErrToolMissing }

// PlatformError reports that privileges cannot be checked on this OS.
type PlatformError struct {
	GOOS string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedPlatform, e.GOOS)
}

func (e *PlatformError) Is(target error) bool { return target == ErrUnsupportedPlatform }

// TransitionError reports that a tool ran but the interface did not reach the
// requested mode. It is recoverable; the caller decides whether to retry.
type TransitionError struct {
	Interface string
	Target    Mode
	Strategy  string
	Message   string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("interface %s: failed to switch to %s mode", e.Interface, e.Target)
	if e.Strategy != "" {
		msg += " (" + e.Strategy + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *TransitionError) Is(target error) bool { return target == ErrTransitionFailed }

// ServiceError reports that stopping or starting a system service failed.
type ServiceError struct {
	Op   string // "stop", "start", "kill"
	Unit string
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Unit, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool { return target == ErrService }

// NotFoundError reports that an interface name does not resolve to a device.
type NotFoundError struct {
	Interface string
	Err       error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("interface %s not found", e.Interface)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrInterfaceNotFound }

// IsFatal reports whether err must terminate the run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrToolMissing) || errors.Is(err, ErrUnsupportedPlatform)
}
