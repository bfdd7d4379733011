package sysinfo

import (
	"context"
	"net"
	"strings"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// CurrentIP returns the host's primary IPv4 address. Loopback and
// link-local addresses are skipped when anything better exists.
func (p *systemProvider) CurrentIP(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return IPError
	}

	var candidates []string
	for _, iface := range ifaces {
		if !interfaceUp(iface) {
			continue
		}
		for _, addr := range iface.Addrs {
			if ip := ipv4From(addr.Addr); ip != "" {
				candidates = append(candidates, ip)
			}
		}
	}

	return pickIP(candidates)
}

// pickIP applies the address preference policy to a candidate list:
// routable IPv4 first, any IPv4 second, NoIPFound otherwise.
func pickIP(candidates []string) string {
	for _, ip := range candidates {
		if !strings.HasPrefix(ip, "127.") && !strings.HasPrefix(ip, "169.254.") {
			return ip
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return NoIPFound
}

// ipv4From extracts a dotted-quad from an interface address, which may be
// in CIDR form. IPv6 yields "".
func ipv4From(addr string) string {
	host := addr
	if strings.Contains(addr, "/") {
		ip, _, err := net.ParseCIDR(addr)
		if err != nil {
			return ""
		}
		host = ip.String()
	}

	parsed := net.ParseIP(host)
	if parsed == nil || parsed.To4() == nil {
		return ""
	}
	return parsed.String()
}

func interfaceUp(iface gopsnet.InterfaceStat) bool {
	for _, flag := range iface.Flags {
		if flag == "up" {
			return true
		}
	}
	return false
}
