// Package assembler fans probes out in parallel and merges their
// results into a single snapshot.
//
// # Overview
//
// The assembler package orchestrates one collection cycle: it runs
// every enabled probe concurrently, bounds each one with a per-probe
// timeout, and folds the results into a snapshot.Snapshot. Probe
// failures are contained to their own section and never abort the
// cycle.
//
// # Core Type
//
// Assembler: runs probes and merges results
//
//	type Assembler struct {
//	    Factory probe.Factory       // Probe factory (optional)
//	    Timeout time.Duration       // Per-probe timeout (optional)
//	    Enabled map[probe.Name]bool // Probe toggles (optional)
//	}
//
// # Usage
//
// Basic assembly with defaults:
//
//	a := &assembler.Assembler{}
//	snap := a.Assemble(context.Background())
//
// Custom factory and timeout:
//
//	factory := probe.NewDefaultFactory()
//	factory.ServiceUnits = []string{"nginx", "postgresql"}
//
//	a := &assembler.Assembler{
//	    Factory: factory,
//	    Timeout: 2 * time.Second,
//	    Enabled: map[probe.Name]bool{probe.NameFirewall: false},
//	}
//	snap := a.Assemble(ctx)
//
// # Section States
//
// Each snapshot section ends a cycle in exactly one of three states:
//
//   - absent: the probe was disabled by configuration, or an optional
//     subsystem (container runtime, firewall) was not detected on the
//     host. The section key does not appear in the document.
//   - ok: the probe returned data within its deadline. An empty
//     collection is still present data.
//   - unavailable: the probe failed or timed out. The section carries
//     the reason instead of data.
//
// # Parallel Collection
//
// Assemble runs one goroutine per enabled probe using errgroup. The
// goroutines communicate failures through section statuses rather than
// errors, so one stuck or failing probe never cancels its siblings. A
// cycle's wall time is bounded by the slowest probe, which is itself
// bounded by the per-probe timeout.
//
// The snapshot timestamp is taken at the start of assembly, before any
// probe runs.
//
// # Observability
//
// The assembler exports Prometheus metrics:
//   - kkdash_snapshot_duration_seconds: Total time to assemble a snapshot
//   - kkdash_snapshot_assemblies_total{result}: Assemblies by result (complete, degraded)
//   - kkdash_probe_duration_seconds{probe}: Per-probe timing
//   - kkdash_probe_outcomes_total{probe,outcome}: Probe executions by outcome
//   - kkdash_snapshot_sections: Sections present in the last snapshot
//
// Structured logs are emitted for assembly start, per-probe progress,
// and probe failures. A failing probe produces exactly one warning per
// cycle.
package assembler
