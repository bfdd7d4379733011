// Package dns adds a best-effort reverse lookup for the status command,
// so an address can be shown alongside the name it resolves to.
package dns

import (
	"context"
	"net"
	"strings"
	"time"
)

// ReverseResult is returned by async resolution.
type ReverseResult struct {
	IP       string
	Hostname string
	Err      error
}

// ReverseAsync performs a reverse DNS lookup asynchronously.
// Returns a channel that receives the result.
func ReverseAsync(ctx context.Context, ip string) <-chan ReverseResult {
	ch := make(chan ReverseResult, 1)

	go func() {
		defer close(ch)

		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		names, err := net.DefaultResolver.LookupAddr(ctx, ip)
		if err != nil || len(names) == 0 {
			ch <- ReverseResult{IP: ip, Err: err}
			return
		}

		ch <- ReverseResult{IP: ip, Hostname: strings.TrimSuffix(names[0], ".")}
	}()

	return ch
}

// Reverse performs a synchronous reverse DNS lookup. An empty hostname
// with nil error means the address simply has no PTR record.
func Reverse(ctx context.Context, ip string) (string, error) {
	result := <-ReverseAsync(ctx, ip)
	return result.Hostname, result.Err
}
