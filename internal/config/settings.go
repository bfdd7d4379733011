package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds user-configurable options for both ends of the link.
// Flags override whatever was loaded from disk.
type Settings struct {
	// Link
	Device   string `yaml:"device"`   // serial device path; empty means autodetect
	BaudRate int    `yaml:"baudRate"` // serial baud rate

	// Timing
	SendInterval     time.Duration `yaml:"sendInterval"`     // host: cadence of periodic sends
	RefreshInterval  time.Duration `yaml:"refreshInterval"`  // device: cadence of refresh requests / countdown span
	RenderTick       time.Duration `yaml:"renderTick"`       // device: countdown redraw cadence
	RequestRateLimit time.Duration `yaml:"requestRateLimit"` // host: minimum spacing between honored REFRESH requests
	InitialDelay     time.Duration `yaml:"initialDelay"`     // host: settle time after opening the port
	RetryDelay       time.Duration `yaml:"retryDelay"`       // host: pause between discovery attempts
	ReadTimeout      time.Duration `yaml:"readTimeout"`      // both: serial read timeout

	// Redundancy against the lossy link
	SendRepeat       int `yaml:"sendRepeat"`       // times each data line is written per send
	InitialSendCount int `yaml:"initialSendCount"` // sends fired immediately after (re)connection

	// Device behavior
	Passive bool `yaml:"passive"` // never solicit refreshes, wait for pushes

	// Logging
	LogFile string `yaml:"logFile"` // rotating log file path; empty means console only
}

// DefaultSettings returns the default settings. The timing values mirror
// the deployed host script and firmware.
func DefaultSettings() *Settings {
	return &Settings{
		BaudRate:         115200,
		SendInterval:     15 * time.Second,
		RefreshInterval:  15 * time.Second,
		RenderTick:       time.Second,
		RequestRateLimit: time.Second,
		InitialDelay:     2 * time.Second,
		RetryDelay:       time.Second,
		ReadTimeout:      100 * time.Millisecond,
		SendRepeat:       2,
		InitialSendCount: 2,
	}
}

// settingsPath returns the path to the settings file.
func settingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ipdisplay", "settings.yaml"), nil
}

// LoadSettings reads settings from disk, falling back to defaults when the
// file is missing. Values absent from the file keep their defaults.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return DefaultSettings(), nil
	}

	// #nosec G304 - path is constructed from trusted sources
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), err
	}

	return settings, nil
}

// SaveSettings writes settings to disk.
func SaveSettings(s *Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
