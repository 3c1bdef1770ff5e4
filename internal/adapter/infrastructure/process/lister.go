// Package process provides the running process inspection adapter implementation.
package process

import (
	"context"
	"fmt"
	"sort"

	"killshot/internal/port"
	"killshot/internal/types"

	"github.com/shirou/gopsutil/v4/process"
)

// ListerAdapter is an adapter that implements the ProcessLister port using gopsutil library.
type ListerAdapter struct{}

// Ensure ListerAdapter implements the ProcessLister port
var _ port.ProcessLister = (*ListerAdapter)(nil)

// NewListerAdapter creates a new process lister adapter.
func NewListerAdapter() *ListerAdapter {
	return &ListerAdapter{}
}

// FindByName returns running processes whose name is in names, ordered by PID.
func (l *ListerAdapter) FindByName(ctx context.Context, names []string) ([]types.InterferingProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	var found []types.InterferingProcess
	for _, p := range procs {
		// Processes can exit between listing and inspection
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if _, ok := wanted[name]; ok {
			found = append(found, types.InterferingProcess{PID: p.Pid, Name: name})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].PID < found[j].PID })
	return found, nil
}
