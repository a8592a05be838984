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

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// Memory reads physical memory usage.
type Memory struct{}

// Collect gathers total, used, free, and available bytes along with
// the used percentage.
func (p *Memory) Collect(ctx context.Context) (snapshot.MemoryInfo, error) {
	var info snapshot.MemoryInfo

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	info.TotalBytes = vm.Total
	info.UsedBytes = vm.Used
	info.FreeBytes = vm.Free
	info.AvailableBytes = vm.Available
	info.UsedPercent = clampPercent(vm.UsedPercent)

	return info, nil
}
