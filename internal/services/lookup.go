// Package services maps well-known ports to service names. The SSH
// detector uses it to classify listening sockets; the status command uses
// it to name what else the host is serving.
package services

// serviceKey is a composite key for port + protocol lookup.
type serviceKey struct {
	port  int
	proto string // "tcp" or "udp"
}

// commonServices covers the services a headless box on a workbench is
// likely to run. Remote-access ports matter most here; the rest exist so
// the status command can label the obvious listeners.
var commonServices = map[serviceKey]string{
	{21, "tcp"}:   "ftp",
	{22, "tcp"}:   "ssh",
	{23, "tcp"}:   "telnet",
	{53, "tcp"}:   "dns",
	{53, "udp"}:   "dns",
	{80, "tcp"}:   "http",
	{123, "udp"}:  "ntp",
	{443, "tcp"}:  "https",
	{445, "tcp"}:  "smb",
	{514, "udp"}:  "syslog",
	{1883, "tcp"}: "mqtt",
	{2222, "tcp"}: "ssh", // common alternate sshd port
	{3389, "tcp"}: "rdp",
	{5900, "tcp"}: "vnc",
	{8080, "tcp"}: "http-alt",
	{8443, "tcp"}: "https-alt",
}

// Lookup returns the service name for a port/protocol combination.
// Returns empty string if not found.
func Lookup(port int, proto string) string {
	return commonServices[serviceKey{port, proto}]
}

// LookupTCP returns the service name for a TCP port.
func LookupTCP(port int) string {
	return commonServices[serviceKey{port, "tcp"}]
}

// LookupUDP returns the service name for a UDP port.
func LookupUDP(port int) string {
	return commonServices[serviceKey{port, "udp"}]
}
