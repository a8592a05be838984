package probe

import "context"

// Name identifies a probe and the snapshot section it feeds.
type Name string

// String returns the string representation of the probe Name.
func (n Name) String() string {
	return string(n)
}

const (
	NameHost        Name = "host"
	NameCPU         Name = "cpu"
	NameMemory      Name = "memory"
	NameFilesystems Name = "filesystems"
	NameServices    Name = "services"
	NameUsers       Name = "users"
	NameContainers  Name = "containers"
	NameFirewall    Name = "firewall"
)

// Names is the list of all probes in assembly order.
var Names = []Name{
	NameHost,
	NameCPU,
	NameMemory,
	NameFilesystems,
	NameServices,
	NameUsers,
	NameContainers,
	NameFirewall,
}

// ParseName parses a string into a probe Name.
// Returns the Name and true if parsing succeeds, or empty Name and false if the string is invalid.
func ParseName(s string) (Name, bool) {
	for _, n := range Names {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// Optional reports whether the probe feeds a section that disappears
// entirely when its subsystem is not present on the host.
func (n Name) Optional() bool {
	return n == NameContainers || n == NameFirewall
}

// Probe gathers the payload for one snapshot section.
// Implementations must honor context cancellation; the caller applies
// the per-probe deadline.
type Probe[T any] interface {
	Collect(ctx context.Context) (T, error)
}

// OptionalProbe guards collection behind a cheap per-cycle existence
// check. When Detect reports false the section is absent rather than
// unavailable. Detection runs every cycle and is never cached, so a
// runtime installed mid-flight shows up on the next snapshot.
type OptionalProbe[T any] interface {
	Probe[T]
	Detect(ctx context.Context) bool
}

// Outcome classifies one probe execution.
type Outcome string

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

const (
	// OutcomeOK means the probe produced data.
	OutcomeOK Outcome = "ok"
	// OutcomeUnavailable means the probe failed for a reason other
	// than its deadline.
	OutcomeUnavailable Outcome = "unavailable"
	// OutcomeTimeout means the probe exceeded its deadline and its
	// in-flight work was abandoned.
	OutcomeTimeout Outcome = "timeout"
	// OutcomeSkipped means an optional probe's subsystem is not
	// present on this host.
	OutcomeSkipped Outcome = "skipped"
)

// Outcomes is the list of all probe outcomes.
var Outcomes = []Outcome{
	OutcomeOK,
	OutcomeUnavailable,
	OutcomeTimeout,
	OutcomeSkipped,
}
