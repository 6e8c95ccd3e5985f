package conf

import (
	"fmt"

	"github.com/CURVoid/cursock/internal/flog"
)

// Resolve loads the config file when one is given and applies command-line
// overrides on top. Flags win over file values.
func Resolve(path, ifaceName string, debug bool) (*Conf, error) {
	var c *Conf
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	} else {
		c = Default()
	}

	if ifaceName != "" {
		c.Capture.Interface = ifaceName
	}
	if debug {
		c.Capture.Debug = true
		c.Log.Level = "debug"
	}

	if c.Capture.Interface == "" {
		return nil, fmt.Errorf("no interface configured, use --iface or the capture.interface config key")
	}
	return c, nil
}

// SetupLogging applies the log section to the global logger.
func (c *Conf) SetupLogging() error {
	return flog.Setup(flog.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	})
}
