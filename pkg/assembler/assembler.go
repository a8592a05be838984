package assembler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kamilkobak/kkdash/pkg/defaults"
	"github.com/kamilkobak/kkdash/pkg/probe"
	"github.com/kamilkobak/kkdash/pkg/snapshot"

	"golang.org/x/sync/errgroup"
)

const (
	resultComplete = "complete"
	resultDegraded = "degraded"
)

// Assembler builds snapshots by running all enabled probes in parallel
// and merging their results. A probe failure never fails the snapshot:
// the failing probe's section is marked unavailable with a reason and
// every other section is unaffected.
type Assembler struct {
	// Factory creates the probes. If nil, the default factory is used.
	Factory probe.Factory

	// Timeout bounds each probe's collection. If zero or negative,
	// defaults.ProbeTimeout is used.
	Timeout time.Duration

	// Enabled controls which probes run. Probes missing from the map
	// are enabled; a nil map enables all of them. Disabled probes leave
	// their section absent from the snapshot.
	Enabled map[probe.Name]bool
}

// Assemble runs one collection cycle and returns the resulting
// snapshot. It never returns an error: per-probe failures surface as
// unavailable sections, and optional subsystems that are not present
// on the host leave their section absent. The snapshot timestamp marks
// the start of assembly.
func (a *Assembler) Assemble(ctx context.Context) *snapshot.Snapshot {
	if a.Factory == nil {
		a.Factory = probe.NewDefaultFactory()
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaults.ProbeTimeout
	}

	slog.Debug("assembling snapshot")

	// Track overall assembly duration
	start := time.Now()
	defer func() {
		snapshotDuration.Observe(time.Since(start).Seconds())
	}()

	var mu sync.Mutex

	// Probe goroutines report failures through section statuses, never
	// through their return value, so the group context is only ever
	// canceled by the caller.
	g, gctx := errgroup.WithContext(ctx)

	snap := snapshot.New()

	if a.probeEnabled(probe.NameHost) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameHost, timeout, a.Factory.CreateHostProbe())
			mu.Lock()
			snap.Host = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameCPU) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameCPU, timeout, a.Factory.CreateCPUProbe())
			mu.Lock()
			snap.CPU = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameMemory) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameMemory, timeout, a.Factory.CreateMemoryProbe())
			mu.Lock()
			snap.Memory = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameFilesystems) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameFilesystems, timeout, a.Factory.CreateFilesystemProbe())
			mu.Lock()
			snap.Filesystems = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameServices) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameServices, timeout, a.Factory.CreateServiceProbe())
			mu.Lock()
			snap.Services = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameUsers) {
		g.Go(func() error {
			section := collectSection(gctx, probe.NameUsers, timeout, a.Factory.CreateUserProbe())
			mu.Lock()
			snap.Users = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameContainers) {
		g.Go(func() error {
			section := collectOptionalSection(gctx, probe.NameContainers, timeout, a.Factory.CreateContainerProbe())
			mu.Lock()
			snap.Containers = section
			mu.Unlock()
			return nil
		})
	}

	if a.probeEnabled(probe.NameFirewall) {
		g.Go(func() error {
			section := collectOptionalSection(gctx, probe.NameFirewall, timeout, a.Factory.CreateFirewallProbe())
			mu.Lock()
			snap.Firewall = section
			mu.Unlock()
			return nil
		})
	}

	// Wait for all probes to complete; goroutines only ever return nil.
	_ = g.Wait()

	statuses := snap.SectionStatuses()
	result := resultComplete
	for _, status := range statuses {
		if status != snapshot.StatusOK {
			result = resultDegraded
			break
		}
	}
	assembliesTotal.WithLabelValues(result).Inc()
	snapshotSections.Set(float64(len(statuses)))

	slog.Debug("snapshot assembly complete",
		slog.String("result", result),
		slog.Int("sections", len(statuses)),
		slog.Duration("elapsed", time.Since(start)))

	return snap
}

// probeEnabled reports whether the named probe should run this cycle.
func (a *Assembler) probeEnabled(name probe.Name) bool {
	if a.Enabled == nil {
		return true
	}
	enabled, ok := a.Enabled[name]
	if !ok {
		return true
	}
	return enabled
}

// collectSection runs a single probe under the configured timeout and
// converts its result into a snapshot section.
func collectSection[T any](ctx context.Context, name probe.Name, timeout time.Duration, p probe.Probe[T]) *snapshot.Section[T] {
	probeStart := time.Now()
	defer func() {
		probeDuration.WithLabelValues(name.String()).Observe(time.Since(probeStart).Seconds())
	}()

	slog.Debug("running probe", slog.String("probe", name.String()))

	data, outcome, err := probe.Run(ctx, timeout, p.Collect)
	probeOutcomes.WithLabelValues(name.String(), outcome.String()).Inc()

	if outcome != probe.OutcomeOK {
		reason := failureReason(outcome, err)
		slog.Warn("probe failed",
			slog.String("probe", name.String()),
			slog.String("outcome", outcome.String()),
			slog.String("error", reason))
		return snapshot.Unavailable[T](reason)
	}

	return snapshot.OK(data)
}

// collectOptionalSection first checks whether the probe's subsystem is
// present on the host. When it is not, the section stays absent and no
// collection is attempted.
func collectOptionalSection[T any](ctx context.Context, name probe.Name, timeout time.Duration, p probe.OptionalProbe[T]) *snapshot.Section[T] {
	if !p.Detect(ctx) {
		probeOutcomes.WithLabelValues(name.String(), probe.OutcomeSkipped.String()).Inc()
		slog.Debug("probe subsystem not present, skipping", slog.String("probe", name.String()))
		return nil
	}
	return collectSection(ctx, name, timeout, p)
}

// failureReason picks the reason string recorded in an unavailable
// section.
func failureReason(outcome probe.Outcome, err error) string {
	if err != nil {
		return err.Error()
	}
	return outcome.String()
}
