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
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// Users reads active login sessions from utmp.
type Users struct{}

// Collect lists logged-in users in utmp record order. A host with no
// interactive sessions returns an empty list, not an error.
func (p *Users) Collect(ctx context.Context) ([]snapshot.User, error) {
	stats, err := host.UsersWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read user sessions: %w", err)
	}

	result := make([]snapshot.User, 0, len(stats))
	for _, s := range stats {
		result = append(result, snapshot.User{
			Username:  s.User,
			Origin:    sessionOrigin(s),
			LoginTime: time.Unix(int64(s.Started), 0).UTC(),
		})
	}

	return result, nil
}

// sessionOrigin prefers the remote host of a session and falls back
// to the local terminal name.
func sessionOrigin(s host.UserStat) string {
	if s.Host != "" {
		return s.Host
	}
	return s.Terminal
}
