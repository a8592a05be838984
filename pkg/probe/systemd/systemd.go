package systemd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

const activeState = "active"

// unitLister is the slice of the systemd D-Bus API the probe uses.
type unitLister interface {
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]dbus.UnitStatus, error)
	Close()
}

// Probe reports the state of watched systemd units.
type Probe struct {
	// Units lists the systemd units to report, in output order. A name
	// without a dot gets the implicit ".service" suffix, matching
	// systemctl's handling of bare names.
	Units []string

	// dial overrides the D-Bus connection for tests.
	dial func(ctx context.Context) (unitLister, error)
}

// Collect reports each watched unit with its active state, preserving
// the configured order. A unit the manager has no record of is reported
// as stopped rather than failing the section.
func (p *Probe) Collect(ctx context.Context) ([]snapshot.ServiceStatus, error) {
	if len(p.Units) == 0 {
		return []snapshot.ServiceStatus{}, nil
	}

	conn, err := p.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	names := make([]string, len(p.Units))
	for i, unit := range p.Units {
		names[i] = unitName(unit)
	}

	statuses, err := conn.ListUnitsByNamesContext(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	byName := make(map[string]dbus.UnitStatus, len(statuses))
	for _, status := range statuses {
		byName[status.Name] = status
	}

	result := make([]snapshot.ServiceStatus, 0, len(p.Units))
	for i, unit := range p.Units {
		status, found := byName[names[i]]
		state := "inactive"
		if found && status.ActiveState != "" {
			state = status.ActiveState
		} else {
			slog.Debug("unit not reported by manager, treating as inactive",
				"unit", names[i],
			)
		}

		result = append(result, snapshot.ServiceStatus{
			Name:    unit,
			Running: state == activeState,
			State:   state,
		})
	}

	return result, nil
}

func (p *Probe) connect(ctx context.Context) (unitLister, error) {
	if p.dial != nil {
		return p.dial(ctx)
	}

	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// unitName applies the implicit ".service" suffix to bare unit names.
// Names that already carry a type suffix, such as "docker.socket",
// pass through unchanged.
func unitName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".service"
}
