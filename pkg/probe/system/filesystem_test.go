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
	"testing"
)

func TestFilesystemsCollect(t *testing.T) {
	p := &Filesystems{}

	mounts, err := p.Collect(context.TODO())
	if err != nil {
		t.Logf("Collect returned error (acceptable): %v", err)
		return
	}

	for _, m := range mounts {
		if m.MountPoint == "" {
			t.Error("mount with empty mount point")
		}
		if _, excluded := excludedFSTypes[m.FSType]; excluded {
			t.Errorf("excluded fstype %q in results for %s", m.FSType, m.MountPoint)
		}
		if m.UsedPercent < 0 || m.UsedPercent > 100 {
			t.Errorf("%s: used percent out of range: %v", m.MountPoint, m.UsedPercent)
		}
		if m.UsedBytes > m.TotalBytes {
			t.Errorf("%s: used %d exceeds total %d", m.MountPoint, m.UsedBytes, m.TotalBytes)
		}
	}
}
