package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kostyay/ipdisplay/internal/logging"
	"github.com/kostyay/ipdisplay/internal/model"
	"github.com/kostyay/ipdisplay/internal/process"
	"github.com/kostyay/ipdisplay/internal/receiver"
	"github.com/kostyay/ipdisplay/internal/serialport"
	"github.com/kostyay/ipdisplay/internal/ui"
)

var displayPassive bool

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Run the receiving end with an on-terminal 16x2 display",
	Long: `Display is the device side of the link: it reads snapshot lines from
the serial port, renders them on a simulated 16x2 character display,
and requests a refresh whenever the data goes stale. With --passive it
never requests and only shows what the host pushes.

On a terminal the display is drawn as a TUI with a scrolling link log.
Piped, each rendered frame is printed as a single line instead.`,
	Args: cobra.NoArgs,
	RunE: runDisplay,
}

func init() {
	displayCmd.Flags().BoolVar(&displayPassive, "passive", false, "Never request refreshes, wait for pushes")
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, args []string) error {
	cfg := loadSettings(cmd)
	if cmd.Flags().Changed("passive") {
		cfg.Passive = displayPassive
	}

	path, err := serialport.Find(cfg.Device)
	if err != nil {
		return err
	}
	port, err := serialport.DefaultFactory(path, cfg.BaudRate)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = port.Close() }()
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}

	rcfg := receiver.Config{
		RefreshInterval: cfg.RefreshInterval,
		RenderTick:      cfg.RenderTick,
		Passive:         cfg.Passive,
	}

	ctx, stop := process.ShutdownContext(cmd.Context())
	defer stop()

	// Piped output: stream frames as plain lines, no TUI.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logging.Setup(logging.Options{Debug: flagDebug, File: cfg.LogFile, Console: true})
		r := receiver.New(rcfg, port, newConsoleScreen(os.Stdout), clockwork.NewRealClock())
		return r.Run(ctx)
	}

	logs := &ui.LogBuffer{}
	logging.Setup(logging.Options{Debug: flagDebug, File: cfg.LogFile, Extra: logs})

	panel := ui.NewPanel()
	r := receiver.New(rcfg, port, panel, clockwork.NewRealClock())
	p := tea.NewProgram(ui.NewModel(panel, logs, path, cfg.Passive), tea.WithAltScreen())

	go func() {
		_ = r.Run(ctx)
		p.Quit()
	}()

	_, err = p.Run()
	stop()
	return err
}

// consoleScreen renders frames as "line1 | line2" lines, one per change.
type consoleScreen struct {
	w    io.Writer
	rows [model.DisplayRows]string
	last string
}

func newConsoleScreen(w io.Writer) *consoleScreen {
	return &consoleScreen{w: w}
}

func (s *consoleScreen) Clear() error {
	s.rows = [model.DisplayRows]string{}
	return nil
}

func (s *consoleScreen) WriteAt(row, col int, text string) error {
	if row < 0 || row >= model.DisplayRows {
		return fmt.Errorf("row %d out of range", row)
	}
	s.rows[row] = strings.Repeat(" ", col) + text
	if row == model.DisplayRows-1 {
		s.flush()
	}
	return nil
}

func (s *consoleScreen) flush() {
	frame := strings.TrimRight(s.rows[0], " ") + " | " + strings.TrimRight(s.rows[1], " ")
	if frame == s.last {
		return
	}
	s.last = frame
	fmt.Fprintln(s.w, frame)
}
