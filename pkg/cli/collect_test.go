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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

func TestCollectCmd_WritesJSONToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snap.json")

	err := Root().Run(context.Background(),
		[]string{"kkdashd", "collect", "--output", out, "--format", "json"})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("output is not a valid snapshot document: %v", err)
	}
	if snap.SchemaVersion != snapshot.SchemaVersion {
		t.Errorf("schema_version = %q, want %q", snap.SchemaVersion, snapshot.SchemaVersion)
	}
	if snap.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestCollectCmd_UnknownFormat(t *testing.T) {
	err := Root().Run(context.Background(),
		[]string{"kkdashd", "collect", "--format", "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCollectCmd_MissingConfigFile(t *testing.T) {
	err := Root().Run(context.Background(),
		[]string{"kkdashd", "collect", "--config", filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestCollectCmd_HonorsDisabledProbes(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := `probes:
  cpu: false
  memory: false
  filesystems: false
  users: false
  services: false
  containers: false
  firewall: false
`
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	out := filepath.Join(dir, "snap.json")
	err := Root().Run(context.Background(),
		[]string{"kkdashd", "collect", "--config", cfgPath, "--output", out})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if _, ok := raw["host"]; !ok {
		t.Error("expected host section to be present")
	}
	for _, key := range []string{"cpu", "memory", "filesystems", "users", "services", "containers", "firewall"} {
		if _, ok := raw[key]; ok {
			t.Errorf("expected section %q to be absent from the document", key)
		}
	}
}
