package inject

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CURVoid/cursock/internal/conf"
	"github.com/CURVoid/cursock/internal/flog"
	"github.com/CURVoid/cursock/internal/socket"
)

var (
	cfgPath string
	ifName  string
	debug   bool
	repeat  int
)

var Cmd = &cobra.Command{
	Use:   "inject <hex-frame|@file>",
	Short: "Send a raw frame given as hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := decodeFrame(args[0])
		if err != nil {
			return err
		}
		if repeat < 1 {
			return fmt.Errorf("repeat must be >= 1, got %d", repeat)
		}

		c, err := conf.Resolve(cfgPath, ifName, debug)
		if err != nil {
			return err
		}
		if err := c.SetupLogging(); err != nil {
			return err
		}

		ch, err := socket.Open(c.Capture.Interface, c.Capture.Debug)
		if err != nil {
			return err
		}
		defer ch.Close()

		for i := 0; i < repeat; i++ {
			if _, err := ch.Send(frame, c.Capture.Debug); err != nil {
				return fmt.Errorf("frame %d/%d: %w", i+1, repeat, err)
			}
		}

		flog.Infof("sent %d frame(s) of %d bytes on %s", repeat, len(frame), c.Capture.Interface)
		return nil
	},
}

// decodeFrame accepts a hex string, optionally containing whitespace and
// colons, or "@path" naming a file with the same format.
func decodeFrame(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
		arg = string(data)
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, arg)

	frame, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex frame: %w", err)
	}
	if len(frame) == 0 {
		return nil, fmt.Errorf("empty frame")
	}
	return frame, nil
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	Cmd.Flags().StringVarP(&ifName, "iface", "i", "", "interface name")
	Cmd.Flags().BoolVarP(&debug, "debug", "d", false, "verbose per-operation logging")
	Cmd.Flags().IntVarP(&repeat, "repeat", "r", 1, "send the frame this many times")
}
