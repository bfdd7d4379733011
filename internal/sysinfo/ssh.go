package sysinfo

import (
	"context"
	"strings"

	gopsnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/kostyay/ipdisplay/internal/services"
)

// CurrentSSHStatus reports whether an SSH daemon is serving on this host.
// A running sshd process or a TCP listener on a well-known ssh port means
// ON; a clean scan finding neither means OFF; scans failing entirely
// means the status is unknown.
func (p *systemProvider) CurrentSSHStatus(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	names, procErr := processNames(ctx)
	if procErr == nil && hasSSHDaemon(names) {
		return SSHOn
	}

	ports, connErr := listenPorts(ctx)
	if connErr == nil && hasSSHListener(ports) {
		return SSHOn
	}

	if procErr != nil && connErr != nil {
		return SSHUnknown
	}
	return SSHOff
}

// hasSSHDaemon reports whether any process name looks like an SSH server.
func hasSSHDaemon(names []string) bool {
	for _, name := range names {
		if strings.EqualFold(name, "sshd") {
			return true
		}
	}
	return false
}

// hasSSHListener reports whether any listening TCP port is a well-known
// ssh port.
func hasSSHListener(ports []int) bool {
	for _, port := range ports {
		if services.LookupTCP(port) == "ssh" {
			return true
		}
	}
	return false
}

func processNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			continue // process may have exited mid-scan
		}
		names = append(names, name)
	}
	return names, nil
}

func listenPorts(ctx context.Context) ([]int, error) {
	conns, err := gopsnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return nil, err
	}
	var ports []int
	for _, conn := range conns {
		if conn.Status == "LISTEN" {
			ports = append(ports, int(conn.Laddr.Port))
		}
	}
	return ports, nil
}
