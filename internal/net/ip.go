package net

import (
	"net"
	"strconv"
)

// outgoingIP is the address this host routes external traffic from. Without
// a route out it falls back to the first interface address.
func outgoingIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		log.Debugf("no outgoing route: %v", err)
		return firstIPv4()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP
}

// firstIPv4 returns the address of the first interface that is up and not
// a loopback.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warnf("listing interfaces: %v", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Warn("no suitable local IP found, falling back to loopback")
	return net.IPv4(127, 0, 0, 1)
}

// EndpointURL is the websocket URL a device uses to reach a board on port.
func EndpointURL(port int) string {
	return "ws://" + net.JoinHostPort(outgoingIP().String(), strconv.Itoa(port)) + InputPath
}
