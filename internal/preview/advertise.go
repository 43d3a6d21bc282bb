package preview

import (
	"fmt"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/mainviews/internal/discovery"
	"github.com/muurk/mainviews/internal/version"
)

// DefaultInstance names the service when none is configured
const DefaultInstance = "mainviews"

// TXTRecords returns the TXT metadata advertised with the service.
func TXTRecords() []string {
	return []string{
		"version=" + version.Version,
		"path=/ws",
		"frame=/frame",
	}
}

// Advertise registers instance on port over mDNS. Shutdown the returned
// server to withdraw it.
func Advertise(instance string, port int) (*zeroconf.Server, error) {
	if instance == "" {
		instance = DefaultInstance
	}
	server, err := zeroconf.Register(instance, discovery.ServiceType, discovery.ServiceDomain, port, TXTRecords(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return server, nil
}
