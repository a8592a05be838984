// Copyright (c) 2025, Kamil Kobak. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snapshot

import (
	"errors"
	"fmt"
	"time"
)

// SchemaVersion identifies the published document layout. Consumers
// should treat added fields as backward compatible.
const SchemaVersion = "v1"

// Status represents the availability of a snapshot section.
type Status string

// String returns the string representation of the section Status.
func (s Status) String() string {
	return string(s)
}

const (
	// StatusOK marks a section whose probe produced data.
	StatusOK Status = "ok"
	// StatusUnavailable marks a section whose probe failed or timed out.
	StatusUnavailable Status = "unavailable"
)

// Statuses is the list of all supported section statuses.
var Statuses = []Status{
	StatusOK,
	StatusUnavailable,
}

// ParseStatus parses a string into a section Status.
// Returns the Status and true if parsing succeeds, or empty Status and false if the string is invalid.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Section is a tagged variant over a section payload. A section is in
// exactly one of three states:
//
//   - absent: the field holding it is nil and the key never appears in
//     the serialized document (probe disabled, or optional subsystem
//     not present on the host)
//   - ok: Data carries the payload; an empty collection is still
//     present data, distinct from absence
//   - unavailable: the probe failed or timed out; Error carries the
//     reason and Data is omitted
type Section[T any] struct {
	Status Status `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Data   *T     `json:"data,omitempty" yaml:"data,omitempty"`
}

// OK returns a present section carrying data.
func OK[T any](data T) *Section[T] {
	return &Section[T]{Status: StatusOK, Data: &data}
}

// Unavailable returns a present section marked unavailable with a reason.
func Unavailable[T any](reason string) *Section[T] {
	return &Section[T]{Status: StatusUnavailable, Error: reason}
}

// IsOK reports whether the section is present and carries data.
func (s *Section[T]) IsOK() bool {
	return s != nil && s.Status == StatusOK
}

// Value returns the section payload and whether it is usable.
func (s *Section[T]) Value() (T, bool) {
	if s == nil || s.Status != StatusOK || s.Data == nil {
		var zero T
		return zero, false
	}
	return *s.Data, true
}

// Validate checks that the section is properly formed.
func (s *Section[T]) Validate() error {
	if s == nil {
		return nil
	}
	if _, ok := ParseStatus(string(s.Status)); !ok {
		return fmt.Errorf("unknown section status %q", s.Status)
	}
	if s.Status == StatusOK && s.Data == nil {
		return errors.New("ok section must carry data")
	}
	if s.Status == StatusUnavailable && s.Error == "" {
		return errors.New("unavailable section must carry a reason")
	}
	return nil
}

// Snapshot is one point-in-time view of host health. Required sections
// are present on every cycle unless disabled by configuration; the
// containers and firewall sections also disappear when their subsystem
// is not present on the host.
type Snapshot struct {
	SchemaVersion string    `json:"schema_version" yaml:"schema_version"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`

	Host        *Section[HostInfo]        `json:"host,omitempty" yaml:"host,omitempty"`
	CPU         *Section[CPUInfo]         `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory      *Section[MemoryInfo]      `json:"memory,omitempty" yaml:"memory,omitempty"`
	Filesystems *Section[[]Filesystem]    `json:"filesystems,omitempty" yaml:"filesystems,omitempty"`
	Services    *Section[[]ServiceStatus] `json:"services,omitempty" yaml:"services,omitempty"`
	Users       *Section[[]User]          `json:"users,omitempty" yaml:"users,omitempty"`
	Containers  *Section[[]Container]     `json:"containers,omitempty" yaml:"containers,omitempty"`
	Firewall    *Section[FirewallSummary] `json:"firewall,omitempty" yaml:"firewall,omitempty"`
}

// New creates a Snapshot stamped with the schema version and the
// current UTC time. The timestamp marks the start of assembly, not
// publication.
func New() *Snapshot {
	return &Snapshot{
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now().UTC(),
	}
}

// SectionStatuses returns the status of every present section keyed by
// its document name. Absent sections do not appear.
func (s *Snapshot) SectionStatuses() map[string]Status {
	out := make(map[string]Status)
	addStatus(out, "host", s.Host)
	addStatus(out, "cpu", s.CPU)
	addStatus(out, "memory", s.Memory)
	addStatus(out, "filesystems", s.Filesystems)
	addStatus(out, "services", s.Services)
	addStatus(out, "users", s.Users)
	addStatus(out, "containers", s.Containers)
	addStatus(out, "firewall", s.Firewall)
	return out
}

func addStatus[T any](m map[string]Status, name string, sec *Section[T]) {
	if sec != nil {
		m[name] = sec.Status
	}
}

// Validate checks that the snapshot is properly formed.
func (s *Snapshot) Validate() error {
	if s.SchemaVersion == "" {
		return errors.New("snapshot schema version cannot be empty")
	}
	if s.Timestamp.IsZero() {
		return errors.New("snapshot timestamp cannot be zero")
	}
	sections := []struct {
		name string
		err  error
	}{
		{"host", s.Host.Validate()},
		{"cpu", s.CPU.Validate()},
		{"memory", s.Memory.Validate()},
		{"filesystems", s.Filesystems.Validate()},
		{"services", s.Services.Validate()},
		{"users", s.Users.Validate()},
		{"containers", s.Containers.Validate()},
		{"firewall", s.Firewall.Validate()},
	}
	for _, sec := range sections {
		if sec.err != nil {
			return fmt.Errorf("section %s: %w", sec.name, sec.err)
		}
	}
	return nil
}
