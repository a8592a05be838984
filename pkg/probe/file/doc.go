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

// Package file provides line-oriented file parsing shared by probes.
//
// This package wraps file reads with the size bounds and error handling
// conventions used throughout the probe framework. Every read is capped,
// so probes stay cheap no matter how large the file on disk grows.
//
// # Usage
//
// Parse a key-value file such as /etc/os-release:
//
//	p := file.NewParser(file.WithVTrimChars(`"`))
//	fields, err := p.GetMap("/etc/os-release")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(fields["PRETTY_NAME"])
//
// Read the trailing lines of a log without loading the whole file:
//
//	p := file.NewParser()
//	lines, err := p.GetTail("/var/log/ufw.log", 1000)
//
// # Error Handling
//
// Errors are wrapped with descriptive context:
//
//	_, err := p.GetLines("/nonexistent")
//	// Error: failed to read file "/nonexistent": no such file or directory
//
// Common error scenarios:
//   - File does not exist (os.ErrNotExist)
//   - Permission denied (os.ErrPermission)
//   - File exceeds the configured maximum size
//   - Content is not valid UTF-8
//
// # Use in Probes
//
// Probes use this package for reading configuration and log files:
//
//	fields, err := p.GetMap("/etc/ufw/ufw.conf")
//	if err != nil {
//	    return nil, fmt.Errorf("failed to read firewall config: %w", err)
//	}
//	// Check fields["ENABLED"]...
//
// # Thread Safety
//
// A Parser carries only immutable configuration and can be used
// concurrently from multiple probes.
package file
