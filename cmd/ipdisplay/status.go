package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kostyay/ipdisplay/internal/dns"
	"github.com/kostyay/ipdisplay/internal/logging"
	"github.com/kostyay/ipdisplay/internal/output"
	"github.com/kostyay/ipdisplay/internal/sysinfo"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the snapshot the display would show",
	Long: `Status gathers the same snapshot the monitor sends and prints it
locally, without touching any serial device. Piped or with --json it
emits JSON for scripting.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format (for scripting/agent consumption)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logging.Setup(logging.Options{Debug: flagDebug})

	ctx := cmd.Context()
	snap := sysinfo.New().Snapshot(ctx)

	var resolved string
	if net.ParseIP(snap.IP) != nil {
		if name, err := dns.Reverse(ctx, snap.IP); err == nil {
			resolved = name
		}
	}

	// JSON mode: explicit flag or non-TTY stdout
	if statusJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
		return output.RenderJSON(os.Stdout, snap, resolved)
	}

	fmt.Printf("IP:        %s\n", snap.IP)
	fmt.Printf("SSH:       %s\n", snap.SSHStatus)
	if snap.Hostname != "" {
		fmt.Printf("Hostname:  %s\n", snap.Hostname)
	}
	if resolved != "" {
		fmt.Printf("Reverse:   %s\n", resolved)
	}
	line1, line2 := snap.Fields()
	fmt.Printf("Display:   [%-16s]\n", line1)
	fmt.Printf("           [%-16s]\n", line2)
	return nil
}
