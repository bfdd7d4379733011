// Package sysinfo gathers the host facts shown on the display: the
// primary IPv4 address and whether SSH is reachable. Lookups are bounded
// and degrade to sentinel values instead of failing, so a broken lookup
// never takes down the send loop.
package sysinfo

import (
	"context"
	"time"

	"github.com/kostyay/ipdisplay/internal/model"
	"github.com/shirou/gopsutil/v3/host"
)

// Sentinel values reported when a lookup fails.
const (
	NoIPFound  = "No IP found"
	IPError    = "IP Error"
	SSHOn      = "SSH: ON"
	SSHOff     = "SSH: OFF"
	SSHUnknown = "SSH: ???"
)

// lookupTimeout bounds every individual system query. The send loop must
// never block on a slow proc scan.
const lookupTimeout = 2 * time.Second

// Provider supplies current host facts. Implementations are synchronous
// and must return sentinel values rather than errors.
type Provider interface {
	CurrentIP(ctx context.Context) string
	CurrentSSHStatus(ctx context.Context) string
	Snapshot(ctx context.Context) *model.Snapshot
}

// New returns the gopsutil-backed Provider.
func New() Provider {
	return &systemProvider{}
}

type systemProvider struct{}

func (p *systemProvider) Snapshot(ctx context.Context) *model.Snapshot {
	return &model.Snapshot{
		IP:        p.CurrentIP(ctx),
		SSHStatus: p.CurrentSSHStatus(ctx),
		Hostname:  p.hostname(ctx),
		Timestamp: time.Now(),
	}
}

func (p *systemProvider) hostname(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return ""
	}
	return info.Hostname
}
