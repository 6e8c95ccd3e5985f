package conf

import (
	"fmt"
	"time"
)

// Capture configures the dump and inject commands. Snaplen bounds the
// receive buffer, Timeout bounds each timed read (0 blocks forever).
type Capture struct {
	Interface string        `yaml:"interface"`
	Snaplen   int           `yaml:"snaplen"`
	Timeout   time.Duration `yaml:"timeout"`
	Debug     bool          `yaml:"debug"`
}

func (c *Capture) setDefaults() {
	if c.Snaplen == 0 {
		c.Snaplen = 65535
	}
}

func (c *Capture) validate() []error {
	var errs []error
	if c.Snaplen < 64 {
		errs = append(errs, fmt.Errorf("capture snaplen must be >= 64, got %d", c.Snaplen))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("capture timeout must be >= 0"))
	}
	return errs
}
