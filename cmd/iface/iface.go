package iface

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CURVoid/cursock/internal/conf"
	"github.com/CURVoid/cursock/internal/socket"
)

var (
	cfgPath string
	ifName  string
	debug   bool
)

var Cmd = &cobra.Command{
	Use:   "iface",
	Short: "Resolve and print interface addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("interface: %s\n", c.Capture.Interface)
		fmt.Printf("ipv4:      %s\n", ch.SrcIPv4())
		fmt.Printf("mac:       %s\n", ch.SrcMac())
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	Cmd.Flags().StringVarP(&ifName, "iface", "i", "", "interface name")
	Cmd.Flags().BoolVarP(&debug, "debug", "d", false, "verbose per-operation logging")
}
