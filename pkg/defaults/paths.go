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

package defaults

import "io/fs"

// Filesystem locations read and written by the collector.
const (
	// OutputPath is where published snapshots land. The dashboard web
	// root serves this file directly.
	OutputPath = "/opt/kkdash/www/data.json"

	// OutputFileMode is applied to published snapshots so the web
	// server user can read them.
	OutputFileMode fs.FileMode = 0o644

	// DockerSocket is the runtime socket checked each cycle to decide
	// whether the container section applies to this host.
	DockerSocket = "/var/run/docker.sock"

	// UFWConfigPath holds the firewall enablement flag.
	UFWConfigPath = "/etc/ufw/ufw.conf"

	// UFWLogPath is the kernel log target for ufw block entries.
	UFWLogPath = "/var/log/ufw.log"
)

// Firewall log scan limits.
const (
	// UFWMaxLines caps how many recent block entries one cycle parses.
	UFWMaxLines = 1000

	// UFWTopN is how many top sources and top ports the summary keeps.
	UFWTopN = 10
)

// ServiceUnits are the systemd units watched when the configuration
// does not name any.
var ServiceUnits = []string{"docker", "libvirtd", "smbd"}
