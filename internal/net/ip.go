package net

import (
	"net"
)

// GetOutgoingIP finds the preferred local IP address for viewers to connect to.
// Without a default route it falls back to the host's interface addresses.
func GetOutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		addrs, _ := net.InterfaceAddrs()
		return lanIPv4(addrs).String()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// lanIPv4 picks the address viewers on the same network are most likely to
// reach: a private IPv4 first, then any other non-loopback IPv4, then the
// loopback address.
func lanIPv4(addrs []net.Addr) net.IP {
	var public net.IP
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipnet.IP.To4()
		switch {
		case ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast():
		case ip.IsPrivate():
			return ip
		case public == nil:
			public = ip
		}
	}
	if public != nil {
		return public
	}
	return net.IPv4(127, 0, 0, 1)
}
