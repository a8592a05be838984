package docker

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

const runningState = "running"

// containerLister is the slice of the Docker client API the probe uses.
type containerLister interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	Close() error
}

// Probe lists containers through the local Docker daemon.
type Probe struct {
	// SocketPath is the runtime socket whose presence enables the probe.
	SocketPath string

	// newClient overrides Docker client construction for tests.
	newClient func() (containerLister, error)
}

// Detect reports whether the container runtime socket exists. It runs
// every cycle, so a runtime installed after start shows up on the next
// snapshot and a removed one drops the section again.
func (p *Probe) Detect(_ context.Context) bool {
	_, err := os.Stat(p.SocketPath)
	return err == nil
}

// Collect lists all containers, running or not, sorted by name. A host
// with a runtime socket but no containers returns an empty list.
func (p *Probe) Collect(ctx context.Context) ([]snapshot.Container, error) {
	cli, err := p.client()
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	defer cli.Close()

	list, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	result := make([]snapshot.Container, 0, len(list))
	for _, c := range list {
		result = append(result, snapshot.Container{
			Name:    containerName(c),
			Image:   familiarImage(c.Image),
			State:   c.State,
			Running: c.State == runningState,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

func (p *Probe) client() (containerLister, error) {
	if p.newClient != nil {
		return p.newClient()
	}
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// containerName returns the primary name without the daemon's leading
// slash, falling back to the short ID for nameless containers.
func containerName(c container.Summary) string {
	if len(c.Names) > 0 {
		return strings.TrimPrefix(c.Names[0], "/")
	}
	if len(c.ID) >= 12 {
		return c.ID[:12]
	}
	return c.ID
}

// familiarImage normalizes an image reference to the familiar form
// docker ps prints. Unparseable references pass through unchanged.
func familiarImage(image string) string {
	ref, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return image
	}
	return reference.FamiliarString(ref)
}
