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

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// CPU reads processor identity and utilization.
type CPU struct{}

// Collect gathers the CPU model, logical core count, and utilization.
// Utilization is the busy share since the previous call in this
// process, so the first snapshot after start reports zero.
func (p *CPU) Collect(ctx context.Context) (snapshot.CPUInfo, error) {
	var info snapshot.CPUInfo

	percent, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return info, fmt.Errorf("failed to read cpu utilization: %w", err)
	}
	if len(percent) > 0 {
		info.UsagePercent = clampPercent(percent[0])
	}

	// Identity reads are best effort.
	if count, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.Cores = count
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		info.Model = infos[0].ModelName
	}

	return info, nil
}
