// Package discovery finds mainviews preview servers on the local network.
//
// Preview servers advertise themselves over multicast DNS with the
// "_mainviews._tcp" service type. A Scanner browses for them and returns one
// Peer per advertised instance.
//
// # Usage Example
//
//	peers, err := discovery.NewScanner().Scan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range peers {
//	    fmt.Println(p.Instance, p.WebSocketURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
