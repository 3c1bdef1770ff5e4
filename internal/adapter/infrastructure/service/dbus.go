package service

import (
	"context"
	"fmt"
	"strings"

	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/coreos/go-systemd/v22/dbus"
)

// unitConn is the subset of the systemd D-Bus connection used here.
type unitConn interface {
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	Close()
}

// DBusAdapter implements the ServiceManager port over the systemd D-Bus API
// using coreos/go-systemd library.
type DBusAdapter struct {
	dial func(ctx context.Context) (unitConn, error)
}

// Ensure DBusAdapter implements the ServiceManager port
var _ port.ServiceManager = (*DBusAdapter)(nil)

// NewDBusAdapter creates a service manager talking to systemd over the system bus.
func NewDBusAdapter() *DBusAdapter {
	return &DBusAdapter{
		dial: func(ctx context.Context) (unitConn, error) {
			return dbus.NewWithContext(ctx)
		},
	}
}

// Start starts the named unit and waits for the job to finish.
func (d *DBusAdapter) Start(ctx context.Context, unit string) error {
	return d.run(ctx, "start", unit)
}

// Stop stops the named unit and waits for the job to finish.
func (d *DBusAdapter) Stop(ctx context.Context, unit string) error {
	return d.run(ctx, "stop", unit)
}

func (d *DBusAdapter) run(ctx context.Context, op, unit string) error {
	name := unitName(unit)

	conn, err := d.dial(ctx)
	if err != nil {
		return &types.ServiceError{Op: op, Unit: name, Err: fmt.Errorf("failed to connect to systemd: %w", err)}
	}
	defer conn.Close()

	done := make(chan string, 1)
	switch op {
	case "start":
		_, err = conn.StartUnitContext(ctx, name, "replace", done)
	default:
		_, err = conn.StopUnitContext(ctx, name, "replace", done)
	}
	if err != nil {
		return &types.ServiceError{Op: op, Unit: name, Err: err}
	}

	select {
	case <-ctx.Done():
		return &types.ServiceError{Op: op, Unit: name, Err: ctx.Err()}
	case result := <-done:
		if result != "done" {
			return &types.ServiceError{Op: op, Unit: name, Err: fmt.Errorf("job finished with result %q", result)}
		}
	}
	return nil
}

// unitName appends the .service suffix systemd's D-Bus API requires.
func unitName(unit string) string {
	if strings.Contains(unit, ".") {
		return unit
	}
	return unit + ".service"
}
