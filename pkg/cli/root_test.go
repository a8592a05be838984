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

package cli

import (
	"testing"

	"github.com/urfave/cli/v3"
)

func hasName(flag cli.Flag, name string) bool {
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func TestRoot_CommandStructure(t *testing.T) {
	root := Root()

	if root.Name != "kkdashd" {
		t.Errorf("Name = %v, want kkdashd", root.Name)
	}
	if root.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if root.Version == "" {
		t.Error("Version should not be empty")
	}

	wantCommands := []string{"run", "collect"}
	for _, name := range wantCommands {
		found := false
		for _, cmd := range root.Commands {
			if cmd.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not found", name)
		}
	}
}

func TestRunCmd_CommandStructure(t *testing.T) {
	cmd := runCmd()

	if cmd.Name != "run" {
		t.Errorf("Name = %v, want run", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"config", "output", "telemetry-addr", "log-level"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestCollectCmd_CommandStructure(t *testing.T) {
	cmd := collectCmd()

	if cmd.Name != "collect" {
		t.Errorf("Name = %v, want collect", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"config", "output", "format", "log-level"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}
