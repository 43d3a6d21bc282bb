package discovery

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type of preview servers
	ServiceType = "_mainviews._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPort is assumed when an entry carries no port
	DefaultPort = 8765
)

// Scanner handles mDNS discovery
type Scanner struct {
	// Timeout is the maximum time to wait for peers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses for preview servers until the timeout or ctx expires.
// Peers are returned in discovery order, one per instance.
func (s *Scanner) Scan(ctx context.Context) ([]*Peer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu    sync.Mutex
		peers []*Peer
		seen  = make(map[string]bool)
		done  = make(chan struct{})
	)

	go func() {
		defer close(done)
		for entry := range entries {
			peer := parseServiceEntry(entry)
			if peer == nil {
				continue
			}
			mu.Lock()
			if !seen[peer.Instance] {
				seen[peer.Instance] = true
				peers = append(peers, peer)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	// the resolver closes entries once the browse context ends
	select {
	case <-done:
	case <-time.After(time.Second):
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]*Peer(nil), peers...), nil
}

// WaitForPeer waits for the peer advertising instance.
func (s *Scanner) WaitForPeer(ctx context.Context, instance string) (*Peer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Peer, 1)

	go func() {
		for entry := range entries {
			peer := parseServiceEntry(entry)
			if peer != nil && peer.Instance == instance {
				found <- peer
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case peer := <-found:
		return peer, nil
	case <-ctx.Done():
		select {
		case peer := <-found:
			return peer, nil
		default:
		}
		return nil, fmt.Errorf("preview server %q not found within timeout", instance)
	}
}

// parseServiceEntry converts a zeroconf service entry to a Peer.
// Returns nil for entries without an instance name or address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Peer {
	if entry == nil || entry.Instance == "" {
		return nil
	}

	// prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = DefaultPort
	}

	metadata := make(map[string]string, len(entry.Text))
	for _, txt := range entry.Text {
		k, v, _ := strings.Cut(txt, "=")
		metadata[k] = v
	}

	return &Peer{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}
