package main

import (
	"context"
	"errors"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kostyay/ipdisplay/internal/config"
	"github.com/kostyay/ipdisplay/internal/logging"
	"github.com/kostyay/ipdisplay/internal/process"
	"github.com/kostyay/ipdisplay/internal/sender"
	"github.com/kostyay/ipdisplay/internal/sysinfo"
)

var (
	flagDevice  string
	flagBaud    int
	flagDebug   bool
	flagLogFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDevice, "device", "d", "", "Serial device path (default: autodetect)")
	rootCmd.PersistentFlags().IntVarP(&flagBaud, "baud", "b", 0, "Serial baud rate")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a rotating file")
}

var rootCmd = &cobra.Command{
	Use:   "ipdisplay",
	Short: "Push this machine's IP and SSH status to a serial character display",
	Long: `ipdisplay keeps a 16x2 character display up to date with this machine's
IP address and SSH daemon status over a USB serial link.

Run without a subcommand it is the host-side monitor: it finds the
display, pushes a snapshot every interval, and answers the display's
REFRESH requests. Use the subcommands for one-shot sends, for the
device-side receiver, or to inspect the snapshot locally:

  ipdisplay                # host monitor daemon
  ipdisplay send           # send one snapshot and exit
  ipdisplay display        # device-side receiver with an on-terminal LCD
  ipdisplay status         # print the snapshot without a display attached`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMonitor,
}

// loadSettings merges the settings file with any flags set on the command
// line. Flags win.
func loadSettings(cmd *cobra.Command) *config.Settings {
	cfg, err := config.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("settings unreadable, using defaults")
		cfg = config.DefaultSettings()
	}
	if cmd.Flags().Changed("device") {
		cfg.Device = flagDevice
	}
	if cmd.Flags().Changed("baud") {
		cfg.BaudRate = flagBaud
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	return cfg
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	logging.Setup(logging.Options{Debug: flagDebug, File: cfg.LogFile, Console: true})

	ctx, stop := process.ShutdownContext(cmd.Context())
	defer stop()

	err := sender.New(cfg, sysinfo.New(), clockwork.NewRealClock()).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}
