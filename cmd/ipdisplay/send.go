package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/kostyay/ipdisplay/internal/logging"
	"github.com/kostyay/ipdisplay/internal/process"
	"github.com/kostyay/ipdisplay/internal/sender"
	"github.com/kostyay/ipdisplay/internal/sysinfo"
)

var sendAttempts int

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one snapshot to the display and exit",
	Long: `Send gathers a fresh snapshot, writes it to the display once, and
exits. Suited to cron or a systemd timer instead of the long-running
monitor. Exits non-zero when no display is found within the attempt
budget.`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().IntVar(&sendAttempts, "attempts", 3, "Discovery attempts before giving up")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	logging.Setup(logging.Options{Debug: flagDebug, File: cfg.LogFile, Console: true})

	ctx, stop := process.ShutdownContext(cmd.Context())
	defer stop()

	return sender.New(cfg, sysinfo.New(), clockwork.NewRealClock()).SendOnce(ctx, sendAttempts)
}
