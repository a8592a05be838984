package probe

import (
	"github.com/kamilkobak/kkdash/pkg/defaults"
	"github.com/kamilkobak/kkdash/pkg/probe/docker"
	"github.com/kamilkobak/kkdash/pkg/probe/system"
	"github.com/kamilkobak/kkdash/pkg/probe/systemd"
	"github.com/kamilkobak/kkdash/pkg/probe/ufw"
	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// Factory creates probes with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostProbe() Probe[snapshot.HostInfo]
	CreateCPUProbe() Probe[snapshot.CPUInfo]
	CreateMemoryProbe() Probe[snapshot.MemoryInfo]
	CreateFilesystemProbe() Probe[[]snapshot.Filesystem]
	CreateServiceProbe() Probe[[]snapshot.ServiceStatus]
	CreateUserProbe() Probe[[]snapshot.User]
	CreateContainerProbe() OptionalProbe[[]snapshot.Container]
	CreateFirewallProbe() OptionalProbe[snapshot.FirewallSummary]
}

// DefaultFactory creates probes with production dependencies.
type DefaultFactory struct {
	ServiceUnits []string
	DockerSocket string
	UFWConfig    string
	UFWLog       string
	UFWMaxLines  int
	UFWTopN      int
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		ServiceUnits: defaults.ServiceUnits,
		DockerSocket: defaults.DockerSocket,
		UFWConfig:    defaults.UFWConfigPath,
		UFWLog:       defaults.UFWLogPath,
		UFWMaxLines:  defaults.UFWMaxLines,
		UFWTopN:      defaults.UFWTopN,
	}
}

// CreateHostProbe creates a host identity probe.
func (f *DefaultFactory) CreateHostProbe() Probe[snapshot.HostInfo] {
	return &system.Host{}
}

// CreateCPUProbe creates a CPU probe.
func (f *DefaultFactory) CreateCPUProbe() Probe[snapshot.CPUInfo] {
	return &system.CPU{}
}

// CreateMemoryProbe creates a memory probe.
func (f *DefaultFactory) CreateMemoryProbe() Probe[snapshot.MemoryInfo] {
	return &system.Memory{}
}

// CreateFilesystemProbe creates a filesystem probe.
func (f *DefaultFactory) CreateFilesystemProbe() Probe[[]snapshot.Filesystem] {
	return &system.Filesystems{}
}

// CreateServiceProbe creates a systemd service probe.
func (f *DefaultFactory) CreateServiceProbe() Probe[[]snapshot.ServiceStatus] {
	return &systemd.Probe{
		Units: f.ServiceUnits,
	}
}

// CreateUserProbe creates a logged-in user probe.
func (f *DefaultFactory) CreateUserProbe() Probe[[]snapshot.User] {
	return &system.Users{}
}

// CreateContainerProbe creates a container probe.
func (f *DefaultFactory) CreateContainerProbe() OptionalProbe[[]snapshot.Container] {
	return &docker.Probe{
		SocketPath: f.DockerSocket,
	}
}

// CreateFirewallProbe creates a firewall activity probe.
func (f *DefaultFactory) CreateFirewallProbe() OptionalProbe[snapshot.FirewallSummary] {
	return &ufw.Probe{
		ConfigPath: f.UFWConfig,
		LogPath:    f.UFWLog,
		MaxLines:   f.UFWMaxLines,
		TopN:       f.UFWTopN,
	}
}
