package ufw

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kamilkobak/kkdash/pkg/probe/file"
	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

const (
	blockMarker = "[UFW BLOCK]"

	fallbackMaxLines = 1000
	fallbackTopN     = 10
)

var (
	srcPattern = regexp.MustCompile(`\bSRC=(\S+)`)
	dptPattern = regexp.MustCompile(`\bDPT=(\d+)`)
)

// Probe summarizes blocked connection attempts from the UFW log.
type Probe struct {
	// ConfigPath locates ufw.conf. The probe is active only when that
	// file declares ENABLED=yes.
	ConfigPath string
	// LogPath locates the UFW kernel log.
	LogPath string
	// MaxLines bounds how many trailing log lines one cycle parses.
	MaxLines int
	// TopN is the number of sources and ports reported.
	TopN int
}

// Detect reports whether UFW is enabled on this host. Hosts without
// the config file, or with ENABLED set to anything but yes, get no
// firewall section.
func (p *Probe) Detect(_ context.Context) bool {
	params, err := file.NewParser().GetMap(p.ConfigPath)
	if err != nil {
		return false
	}
	return params["ENABLED"] == "yes"
}

// Collect tallies block entries from the tail of the UFW log. A
// missing log file means nothing was blocked since rotation and
// yields zero counts rather than an error.
func (p *Probe) Collect(_ context.Context) (snapshot.FirewallSummary, error) {
	summary := snapshot.FirewallSummary{
		TopSources: []snapshot.AddressCount{},
		TopPorts:   []snapshot.PortCount{},
	}

	maxLines := p.MaxLines
	if maxLines <= 0 {
		maxLines = fallbackMaxLines
	}
	topN := p.TopN
	if topN <= 0 {
		topN = fallbackTopN
	}

	// Log lines start with a syslog timestamp, not a comment marker,
	// but keep comment skipping off so nothing is silently dropped.
	parser := file.NewParser(file.WithSkipComments(false))

	lines, err := parser.GetTail(p.LogPath, maxLines)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return summary, nil
		}
		return summary, fmt.Errorf("failed to read firewall log: %w", err)
	}

	sources := make(map[string]int)
	ports := make(map[int]int)

	for _, line := range lines {
		if !strings.Contains(line, blockMarker) {
			continue
		}

		src := srcPattern.FindStringSubmatch(line)
		if src == nil {
			continue
		}
		summary.BlockedTotal++
		sources[src[1]]++

		if dpt := dptPattern.FindStringSubmatch(line); dpt != nil {
			if port, err := strconv.Atoi(dpt[1]); err == nil {
				ports[port]++
			}
		}
	}

	summary.TopSources = topSources(sources, topN)
	summary.TopPorts = topPorts(ports, topN)

	return summary, nil
}

// topSources ranks sources by count descending. Ties break by address
// ascending so equal counts keep a stable order across cycles.
func topSources(counts map[string]int, n int) []snapshot.AddressCount {
	result := make([]snapshot.AddressCount, 0, len(counts))
	for addr, count := range counts {
		result = append(result, snapshot.AddressCount{Address: addr, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return addrLess(result[i].Address, result[j].Address)
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}

// topPorts ranks ports by count descending with ties broken by port
// number ascending.
func topPorts(counts map[int]int, n int) []snapshot.PortCount {
	result := make([]snapshot.PortCount, 0, len(counts))
	for port, count := range counts {
		result = append(result, snapshot.PortCount{Port: port, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Port < result[j].Port
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}

// addrLess orders IP addresses numerically when both parse, falling
// back to string order for anything malformed.
func addrLess(a, b string) bool {
	pa, errA := netip.ParseAddr(a)
	pb, errB := netip.ParseAddr(b)
	if errA == nil && errB == nil {
		return pa.Compare(pb) < 0
	}
	return a < b
}
