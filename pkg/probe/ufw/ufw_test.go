package ufw

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func blockLine(src string, dpt int) string {
	return fmt.Sprintf(
		"Aug 25 06:25:01 host kernel: [ 1234.5678] [UFW BLOCK] IN=eth0 OUT= SRC=%s DST=198.51.100.7 LEN=60 PROTO=TCP SPT=51514 DPT=%d WINDOW=64240",
		src, dpt,
	)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "enabled",
			content:  "# /etc/ufw/ufw.conf\nENABLED=yes\nLOGLEVEL=low\n",
			expected: true,
		},
		{
			name:     "disabled",
			content:  "ENABLED=no\nLOGLEVEL=low\n",
			expected: false,
		},
		{
			name:     "missing key",
			content:  "LOGLEVEL=low\n",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Probe{ConfigPath: writeFile(t, "ufw.conf", tt.content)}
			if got := p.Detect(context.TODO()); got != tt.expected {
				t.Errorf("Detect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDetectMissingConfig(t *testing.T) {
	p := &Probe{ConfigPath: filepath.Join(t.TempDir(), "ufw.conf")}
	if p.Detect(context.TODO()) {
		t.Error("Detect() = true with no config file")
	}
}

func TestCollectMissingLog(t *testing.T) {
	p := &Probe{LogPath: filepath.Join(t.TempDir(), "ufw.log")}

	summary, err := p.Collect(context.TODO())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if summary.BlockedTotal != 0 {
		t.Errorf("BlockedTotal = %d, want 0", summary.BlockedTotal)
	}
	if summary.TopSources == nil || len(summary.TopSources) != 0 {
		t.Errorf("TopSources = %v, want empty", summary.TopSources)
	}
	if summary.TopPorts == nil || len(summary.TopPorts) != 0 {
		t.Errorf("TopPorts = %v, want empty", summary.TopPorts)
	}
}

func TestCollectUnreadableLog(t *testing.T) {
	// A directory in place of the log cannot be read as a file.
	p := &Probe{LogPath: t.TempDir()}

	if _, err := p.Collect(context.TODO()); err == nil {
		t.Error("expected error for unreadable log")
	}
}

func TestCollectCountsAndRanks(t *testing.T) {
	lines := []string{
		blockLine("203.0.113.4", 22),
		blockLine("203.0.113.4", 22),
		blockLine("203.0.113.4", 443),
		blockLine("10.0.0.10", 22),
		blockLine("10.0.0.2", 8080),
		// Non-block noise must not count.
		"Aug 25 06:26:01 host kernel: [UFW AUDIT] IN=eth0 SRC=192.0.2.1 DPT=80",
		"Aug 25 06:26:02 host sshd[123]: Accepted publickey for kamil",
		// Block line without SRC is skipped.
		"Aug 25 06:26:03 host kernel: [UFW BLOCK] IN=eth0 OUT= PROTO=ICMP",
	}
	p := &Probe{
		LogPath:  writeFile(t, "ufw.log", strings.Join(lines, "\n")+"\n"),
		MaxLines: 100,
		TopN:     10,
	}

	summary, err := p.Collect(context.TODO())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if summary.BlockedTotal != 5 {
		t.Errorf("BlockedTotal = %d, want 5", summary.BlockedTotal)
	}

	// 203.0.113.4 leads with 3; the single-count sources tie and
	// numeric address order puts 10.0.0.2 before 10.0.0.10.
	wantSources := []struct {
		addr  string
		count int
	}{
		{addr: "203.0.113.4", count: 3},
		{addr: "10.0.0.2", count: 1},
		{addr: "10.0.0.10", count: 1},
	}
	if len(summary.TopSources) != len(wantSources) {
		t.Fatalf("TopSources = %v, want %d entries", summary.TopSources, len(wantSources))
	}
	for i, want := range wantSources {
		got := summary.TopSources[i]
		if got.Address != want.addr || got.Count != want.count {
			t.Errorf("TopSources[%d] = %+v, want %s(%d)", i, got, want.addr, want.count)
		}
	}

	// Port 22 leads with 3; 443 and 8080 tie at 1 and order by number.
	wantPorts := []struct {
		port  int
		count int
	}{
		{port: 22, count: 3},
		{port: 443, count: 1},
		{port: 8080, count: 1},
	}
	if len(summary.TopPorts) != len(wantPorts) {
		t.Fatalf("TopPorts = %v, want %d entries", summary.TopPorts, len(wantPorts))
	}
	for i, want := range wantPorts {
		got := summary.TopPorts[i]
		if got.Port != want.port || got.Count != want.count {
			t.Errorf("TopPorts[%d] = %+v, want %d(%d)", i, got, want.port, want.count)
		}
	}
}

func TestCollectTopNBound(t *testing.T) {
	var lines []string
	for i := 1; i <= 20; i++ {
		lines = append(lines, blockLine(fmt.Sprintf("192.0.2.%d", i), 1000+i))
	}
	p := &Probe{
		LogPath:  writeFile(t, "ufw.log", strings.Join(lines, "\n")+"\n"),
		MaxLines: 100,
		TopN:     5,
	}

	summary, err := p.Collect(context.TODO())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if summary.BlockedTotal != 20 {
		t.Errorf("BlockedTotal = %d, want 20", summary.BlockedTotal)
	}
	if len(summary.TopSources) != 5 {
		t.Errorf("len(TopSources) = %d, want 5", len(summary.TopSources))
	}
	if len(summary.TopPorts) != 5 {
		t.Errorf("len(TopPorts) = %d, want 5", len(summary.TopPorts))
	}
}

func TestCollectMaxLinesBound(t *testing.T) {
	// Fifty block entries, but only the trailing ten may be parsed.
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, blockLine("198.51.100.9", 22))
	}
	p := &Probe{
		LogPath:  writeFile(t, "ufw.log", strings.Join(lines, "\n")+"\n"),
		MaxLines: 10,
		TopN:     10,
	}

	summary, err := p.Collect(context.TODO())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if summary.BlockedTotal != 10 {
		t.Errorf("BlockedTotal = %d, want 10", summary.BlockedTotal)
	}
}

func TestAddrLess(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "numeric v4 order", a: "10.0.0.2", b: "10.0.0.10", expected: true},
		{name: "string order would invert", a: "10.0.0.10", b: "10.0.0.2", expected: false},
		{name: "v6 addresses compare", a: "2001:db8::1", b: "2001:db8::2", expected: true},
		{name: "malformed falls back to strings", a: "bogus-a", b: "bogus-b", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addrLess(tt.a, tt.b); got != tt.expected {
				t.Errorf("addrLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
