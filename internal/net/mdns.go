// Package net publishes a running session to read-only viewers on the local
// network.
package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const ServiceType = "_bezierboard._tcp"

// advertise announces the share server on port over multicast DNS. The TXT
// record carries the session ID.
func advertise(port int, session string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("get hostname: %w", err)
	}

	info := []string{"BezierBoard", "session=" + session}
	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("start mDNS server: %w", err)
	}
	return server, nil
}
