package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Peer is a discovered preview server
type Peer struct {
	// Instance is the advertised service instance name
	Instance string

	// Hostname is the mDNS hostname (e.g., "bench.local.")
	Hostname string

	IP   string
	Port int

	// Metadata holds the TXT records: "version", "path", "frame"
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the peer
func (p *Peer) String() string {
	return fmt.Sprintf("%s (%s) at %s", p.Instance, p.Hostname, p.hostPort())
}

func (p *Peer) hostPort() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(p.Port))
}

// BaseURL returns the HTTP base URL of the peer
func (p *Peer) BaseURL() string {
	return "http://" + p.hostPort()
}

// WebSocketURL returns the frame stream URL, honouring an advertised path.
func (p *Peer) WebSocketURL() string {
	path := p.GetMetadata("path")
	if path == "" {
		path = "/ws"
	}
	return "ws://" + p.hostPort() + path
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (p *Peer) GetMetadata(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}
