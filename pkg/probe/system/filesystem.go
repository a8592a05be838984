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
	"log/slog"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// Pseudo and overlay filesystems carry no capacity signal.
var excludedFSTypes = map[string]struct{}{
	"tmpfs":    {},
	"devtmpfs": {},
	"overlay":  {},
}

// Filesystems reads capacity for mounted physical filesystems.
type Filesystems struct{}

// Collect lists physical partitions in mount table order with their
// capacity. Mounts whose usage cannot be read are skipped rather than
// failing the whole list.
func (p *Filesystems) Collect(ctx context.Context) ([]snapshot.Filesystem, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	result := make([]snapshot.Filesystem, 0, len(parts))
	for _, part := range parts {
		if _, skip := excludedFSTypes[part.Fstype]; skip {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			slog.Debug("skipping unreadable mount",
				"mount", part.Mountpoint,
				"error", err,
			)
			continue
		}

		result = append(result, snapshot.Filesystem{
			MountPoint:     part.Mountpoint,
			Device:         part.Device,
			FSType:         part.Fstype,
			TotalBytes:     usage.Total,
			UsedBytes:      usage.Used,
			AvailableBytes: usage.Free,
			UsedPercent:    clampPercent(usage.UsedPercent),
		})
	}

	return result, nil
}
