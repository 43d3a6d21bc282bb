package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func entry(instance, host string, port int, v4, v6 []net.IP, txt ...string) *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry(instance, ServiceType, ServiceDomain)
	e.HostName = host
	e.Port = port
	e.AddrIPv4 = v4
	e.AddrIPv6 = v6
	e.Text = txt
	return e
}

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name:     "IPv4 server",
			entry:    entry("bench", "bench.local.", 8765, []net.IP{net.ParseIP("192.168.4.16")}, nil, "path=/ws"),
			wantIP:   "192.168.4.16",
			wantPort: 8765,
		},
		{
			name:     "custom port",
			entry:    entry("bench", "bench.local.", 9090, []net.IP{net.ParseIP("10.0.0.5")}, nil),
			wantIP:   "10.0.0.5",
			wantPort: 9090,
		},
		{
			name:     "no port specified (should default)",
			entry:    entry("bench", "bench.local.", 0, []net.IP{net.ParseIP("172.16.0.1")}, nil),
			wantIP:   "172.16.0.1",
			wantPort: DefaultPort,
		},
		{
			name:     "IPv6 only",
			entry:    entry("bench", "bench.local.", 8765, nil, []net.IP{net.ParseIP("fe80::1")}),
			wantIP:   "fe80::1",
			wantPort: 8765,
		},
		{
			name:     "both families (should prefer IPv4)",
			entry:    entry("bench", "bench.local.", 8765, []net.IP{net.ParseIP("192.168.1.50")}, []net.IP{net.ParseIP("fe80::2")}),
			wantIP:   "192.168.1.50",
			wantPort: 8765,
		},
		{
			name:    "no address",
			entry:   entry("bench", "bench.local.", 8765, nil, nil),
			wantNil: true,
		},
		{
			name:    "no instance",
			entry:   entry("", "bench.local.", 8765, []net.IP{net.ParseIP("192.168.1.1")}, nil),
			wantNil: true,
		},
		{
			name:    "nil entry",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peer := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if peer != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", peer)
				}
				return
			}
			if peer == nil {
				t.Fatal("parseServiceEntry() = nil, want peer")
			}
			if peer.IP != tt.wantIP {
				t.Errorf("peer.IP = %v, want %v", peer.IP, tt.wantIP)
			}
			if peer.Port != tt.wantPort {
				t.Errorf("peer.Port = %v, want %v", peer.Port, tt.wantPort)
			}
			if peer.Instance != tt.entry.Instance {
				t.Errorf("peer.Instance = %v, want %v", peer.Instance, tt.entry.Instance)
			}
			if time.Since(peer.DiscoveredAt) > time.Second {
				t.Errorf("peer.DiscoveredAt is not recent: %v", peer.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntryMetadata(t *testing.T) {
	peer := parseServiceEntry(entry("bench", "bench.local.", 8765,
		[]net.IP{net.ParseIP("192.168.4.16")}, nil,
		"version=v1.2.0", "path=/ws", "flag", "frame=/frame"))
	if peer == nil {
		t.Fatal("parseServiceEntry() = nil, want peer")
	}

	want := map[string]string{
		"version": "v1.2.0",
		"path":    "/ws",
		"flag":    "",
		"frame":   "/frame",
	}
	if len(peer.Metadata) != len(want) {
		t.Errorf("peer.Metadata has %d entries, want %d", len(peer.Metadata), len(want))
	}
	for k, v := range want {
		if got, ok := peer.Metadata[k]; !ok || got != v {
			t.Errorf("peer.Metadata[%q] = %q, %v; want %q", k, got, ok, v)
		}
	}
}

func TestPeerURLs(t *testing.T) {
	tests := []struct {
		name     string
		peer     *Peer
		wantBase string
		wantWS   string
	}{
		{
			name:     "IPv4 default path",
			peer:     &Peer{Instance: "bench", IP: "192.168.4.16", Port: 8765},
			wantBase: "http://192.168.4.16:8765",
			wantWS:   "ws://192.168.4.16:8765/ws",
		},
		{
			name:     "advertised path",
			peer:     &Peer{IP: "10.0.0.5", Port: 80, Metadata: map[string]string{"path": "/stream"}},
			wantBase: "http://10.0.0.5:80",
			wantWS:   "ws://10.0.0.5:80/stream",
		},
		{
			name:     "IPv6",
			peer:     &Peer{IP: "fe80::1", Port: 8765},
			wantBase: "http://[fe80::1]:8765",
			wantWS:   "ws://[fe80::1]:8765/ws",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.peer.BaseURL(); got != tt.wantBase {
				t.Errorf("BaseURL() = %v, want %v", got, tt.wantBase)
			}
			if got := tt.peer.WebSocketURL(); got != tt.wantWS {
				t.Errorf("WebSocketURL() = %v, want %v", got, tt.wantWS)
			}
		})
	}
}

func TestPeerString(t *testing.T) {
	peer := &Peer{Instance: "bench", Hostname: "bench.local.", IP: "192.168.4.16", Port: 8765}
	want := "bench (bench.local.) at 192.168.4.16:8765"
	if peer.String() != want {
		t.Errorf("String() = %v, want %v", peer.String(), want)
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()
	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}
