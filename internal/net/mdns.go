package net

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_curveboard._tcp"

// Advertise announces the viewer on the local network. Close the returned
// server with Shutdown.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"CurveBoard viewer", "path=/"}

	// Empty domain and host name default to ".local" and the OS hostname; nil
	// IPs are auto-detected.
	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Discover lists the share links of boards advertised on the local network,
// waiting up to timeout for answers.
func Discover(timeout time.Duration) ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 8)
	var (
		links []string
		wg    sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			links = append(links, fmt.Sprintf("http://%s:%d/", e.AddrV4, e.Port))
		}
	}()

	err := mdns.Query(&mdns.QueryParam{
		Service: serviceType,
		Timeout: timeout,
		Entries: entries,
	})
	close(entries)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("mdns query: %w", err)
	}
	return links, nil
}
