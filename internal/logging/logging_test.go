package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestSetup_FileLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ipdisplay.log")

	Setup(Options{File: logFile})
	log.Info().Str("key", "value").Msg("hello")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestSetup_DebugLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "debug.log")

	Setup(Options{File: logFile, Debug: true})
	log.Debug().Msg("debug entry")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "debug entry") {
		t.Error("debug entry should be logged at debug level")
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "info.log")

	Setup(Options{File: logFile})
	log.Debug().Msg("should not appear")
	log.Info().Msg("should appear")

	data, _ := os.ReadFile(logFile)
	if strings.Contains(string(data), "should not appear") {
		t.Error("debug entry leaked at info level")
	}
}

func TestSetup_ExtraSink(t *testing.T) {
	var buf strings.Builder

	Setup(Options{Extra: &buf})
	log.Info().Msg("mirrored entry")

	if !strings.Contains(buf.String(), "mirrored entry") {
		t.Errorf("extra sink missing entry: %q", buf.String())
	}
}

func TestSetup_NoWritersDisablesOutput(t *testing.T) {
	// Must not panic, and subsequent log calls must be no-ops.
	Setup(Options{})
	log.Info().Msg("dropped")
}
