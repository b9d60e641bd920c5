package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service under which a board offers its remote
// input endpoint.
const ServiceType = "_mywhiteboard._tcp"

// ErrNoBoard is returned by Discover when no board answered in time.
var ErrNoBoard = errors.New("no whiteboard found on the local network")

// Advertise announces the remote input endpoint on port. Shut the returned
// server down to withdraw it.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		ServiceType,
		"",
		"",
		port,
		[]net.IP{firstIPv4()},
		[]string{"MyWhiteboard", "path=" + InputPath},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	log.Infof("advertising %s on port %d", ServiceType, port)
	return server, nil
}

// Browse reports the host:port of every board that answers within timeout.
func Browse(timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	return err
}

// Discover returns the first board found on the local network.
func Discover(ctx context.Context, timeout time.Duration) (string, error) {
	addrs := make(chan string, 1)
	go func() {
		err := Browse(timeout, func(addr string) {
			select {
			case addrs <- addr:
			default:
			}
		})
		if err != nil {
			log.Errorf("mDNS query failed: %v", err)
		}
		close(addrs)
	}()
	select {
	case addr, ok := <-addrs:
		if !ok {
			return "", ErrNoBoard
		}
		return addr, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
