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

package system

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/kamilkobak/kkdash/pkg/probe/file"
	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

var (
	releasePathPrimary  = "/etc/os-release"
	releasePathFallback = "/usr/lib/os-release"
)

// Host reads host identity and uptime.
type Host struct {
	// ReleasePath overrides the os-release location. Empty means the
	// standard locations in freedesktop.org fallback order.
	ReleasePath string
}

// Collect gathers hostname, OS release name, kernel version,
// architecture, and uptime seconds.
func (p *Host) Collect(ctx context.Context) (snapshot.HostInfo, error) {
	var info snapshot.HostInfo

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to read host info: %w", err)
	}

	info.Hostname = hi.Hostname
	info.Kernel = hi.KernelVersion
	info.Arch = hi.KernelArch
	info.UptimeSeconds = hi.Uptime
	info.OS = p.osName(hi)

	return info, nil
}

// osName returns the PRETTY_NAME from os-release, falling back to the
// platform fields reported by gopsutil when the file is unreadable.
//
//	NAME="Ubuntu"
//	ID=ubuntu
//	PRETTY_NAME="Ubuntu 24.04.2 LTS"
func (p *Host) osName(hi *host.InfoStat) string {
	root := p.ReleasePath
	if root == "" {
		// Per freedesktop.org spec, fall back to /usr/lib/os-release.
		root = releasePathPrimary
		if _, err := os.Stat(root); os.IsNotExist(err) {
			root = releasePathFallback
		}
	}

	// Remove surrounding quotes if any per freedesktop.org spec.
	parser := file.NewParser(file.WithVTrimChars(`"'`))

	params, err := parser.GetMap(root)
	if err == nil && params["PRETTY_NAME"] != "" {
		return params["PRETTY_NAME"]
	}

	return strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
}
