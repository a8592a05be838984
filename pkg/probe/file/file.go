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

package file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Options for configuring the Parser.
type Option func(*Parser)

// Parser parses line-oriented files with customizable settings.
type Parser struct {
	maxSize      int
	skipComments bool
	kvDelimiter  string
	vTrimChars   string
}

// WithMaxSize sets the maximum number of bytes read from a file.
// Default is 1MB. GetTail uses this as the size of the trailing
// window it reads.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines in the file.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVTrimChars sets characters to trim from values in GetMap.
// Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// NewParser creates a new file parser with the provided options.
// Default settings: 1MB max read, comments skipped, "=" key-value delimiter.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
		kvDelimiter:  "=",
		vTrimChars:   "",
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at the given path and parses its content into a map.
// Each line is split into a key-value pair on the configured delimiter.
// A line without the delimiter becomes a key with an empty value.
// Returns an error if the file cannot be read or parsed.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)

		key := strings.TrimSpace(kv[0])
		if len(kv) != 2 {
			slog.Debug("line without value",
				"line", line,
				"delimiter", p.kvDelimiter,
			)
			result[key] = ""
			continue
		}

		value := strings.TrimSpace(kv[1])
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}

		result[key] = value
	}

	return result, nil
}

// GetLines reads the file at the given path and splits its content into
// lines. It returns a slice of non-empty lines. An error is returned if
// the file cannot be read, exceeds the maximum size, or contains invalid
// UTF-8 content.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	return p.splitLines(string(b), path), nil
}

// GetTail reads at most n trailing lines from the file at the given path
// without loading the whole file. Files larger than the configured max
// size are read through a window at the end, and a line cut off by the
// window start is discarded. Returned lines keep file order.
func (p *Parser) GetTail(path string, n int) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if n <= 0 {
		return nil, fmt.Errorf("line count must be positive, got %d", n)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %q: %w", path, err)
	}

	size := info.Size()
	offset := int64(0)
	if size > int64(p.maxSize) {
		offset = size - int64(p.maxSize)
	}

	b := make([]byte, size-offset)
	if _, err := f.ReadAt(b, offset); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	content := string(b)
	if offset > 0 {
		// The window almost always starts mid-line. Drop the partial
		// first line so every returned line is complete.
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			content = content[i+1:]
		} else {
			content = ""
		}
	}

	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	lines := p.splitLines(content, path)
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

func (p *Parser) splitLines(content, path string) []string {
	parts := strings.Split(content, "\n")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" {
			slog.Debug("skipping empty line from file", slog.String("path", path))
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, cleanPart)
	}

	return result
}
