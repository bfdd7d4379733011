package serialport

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// commonPaths are checked first on Linux. A Pico in CDC mode almost always
// shows up as the first ACM device.
var commonPaths = []string{"/dev/ttyACM0", "/dev/ttyACM1", "/dev/ttyUSB0"}

// ErrNoDevice is returned when no candidate serial device is present.
type ErrNoDevice struct{}

func (ErrNoDevice) Error() string { return "no serial display device found" }

// Find returns the most likely device path for the display. An explicit
// preferred path wins if it exists; otherwise the common Linux CDC paths
// are probed, then the platform's serial port list is filtered for
// USB-attached candidates.
func Find(preferred string) (string, error) {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred, nil
		}
		log.Debug().Str("path", preferred).Msg("preferred device path not present")
	}

	if runtime.GOOS == "linux" {
		for _, path := range commonPaths {
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		if path := scanDevDir(); path != "" {
			return path, nil
		}
		return "", ErrNoDevice{}
	}

	ports, err := serial.GetPortsList()
	if err != nil {
		log.Debug().Err(err).Msg("serial port enumeration failed")
		return "", ErrNoDevice{}
	}
	for _, port := range ports {
		if isUSBCandidate(port) {
			return port, nil
		}
	}
	return "", ErrNoDevice{}
}

// picoVendorID is the Raspberry Pi USB vendor id. A node carrying it is
// almost certainly the display.
const picoVendorID = "2e8a"

// scanDevDir looks for ttyACM/ttyUSB nodes under /dev. A node whose sysfs
// vendor id matches the Pico wins; otherwise the first candidate does.
func scanDevDir() string {
	f, err := os.Open("/dev")
	if err != nil {
		return ""
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close /dev")
		}
	}()

	names, err := f.Readdirnames(0)
	if err != nil {
		return ""
	}
	sort.Strings(names)

	var fallback string
	for _, name := range names {
		if !strings.HasPrefix(name, "ttyACM") && !strings.HasPrefix(name, "ttyUSB") {
			continue
		}
		if vendorID(name) == picoVendorID {
			return filepath.Join("/dev", name)
		}
		if fallback == "" {
			fallback = filepath.Join("/dev", name)
		}
	}
	return fallback
}

// vendorID reads a tty's USB vendor id from sysfs. Empty when the node has
// no USB parent or sysfs is unavailable.
func vendorID(name string) string {
	data, err := os.ReadFile(filepath.Join("/sys/class/tty", name, "device", "..", "idVendor"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func isUSBCandidate(port string) bool {
	switch runtime.GOOS {
	case "darwin":
		return strings.HasPrefix(port, "/dev/tty.usbmodem") || strings.HasPrefix(port, "/dev/tty.usbserial")
	case "windows":
		return strings.HasPrefix(port, "COM")
	default:
		return true
	}
}

// Exists reports whether the device path is still present. On platforms
// without device nodes this always reports true and disconnects surface
// as write failures instead.
func Exists(path string) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}
