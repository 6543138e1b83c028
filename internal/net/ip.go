package net

import (
	"fmt"
	"log"
	"net"
)

// Dialing UDP sends nothing; it only asks the kernel which source address
// routes toward this host.
const routeProbeAddr = "8.8.8.8:80"

// LocalIP returns the address other machines on the LAN should use to reach
// this board. It prefers the address of the default route, then the first
// IPv4 address of an interface that is up, then loopback.
func LocalIP() net.IP {
	if ip := routedIPv4(); ip != nil {
		return ip
	}
	if ip := interfaceIPv4(); ip != nil {
		return ip
	}
	log.Println("[VIEWER] No usable interface address, sharing loopback")
	return net.IPv4(127, 0, 0, 1).To4()
}

func routedIPv4() net.IP {
	conn, err := net.Dial("udp", routeProbeAddr)
	if err != nil {
		return nil
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return nil
	}
	return addr.IP.To4()
}

func interfaceIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[VIEWER] List interfaces: %v", err)
		return nil
	}
	for _, iface := range ifaces {
		if !shareable(iface.Flags) {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if ip := firstIPv4(addrs); ip != nil {
			return ip
		}
	}
	return nil
}

// shareable reports whether an interface with flags can carry viewer traffic.
func shareable(flags net.Flags) bool {
	return flags&net.FlagUp != 0 && flags&net.FlagLoopback == 0
}

// firstIPv4 skips loopback and link-local addresses, which other hosts
// cannot reliably dial.
func firstIPv4(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() || ip4.IsLinkLocalUnicast() {
			continue
		}
		return ip4
	}
	return nil
}

// ShareLink builds the browser URL of the viewer listening on addr. Wildcard
// hosts are replaced with LocalIP.
func ShareLink(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = LocalIP().String()
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
}
