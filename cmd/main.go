package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CURVoid/cursock/cmd/dump"
	"github.com/CURVoid/cursock/cmd/iface"
	"github.com/CURVoid/cursock/cmd/inject"
	"github.com/CURVoid/cursock/cmd/version"
	"github.com/CURVoid/cursock/internal/flog"
)

var rootCmd = &cobra.Command{
	Use:   "cursock",
	Short: "Raw link-layer packet I/O on a named interface.",
	Long: `cursock opens a raw capture/injection channel on a network interface,
resolves its IPv4 and hardware address, and sends or receives opaque
link-layer frames.`,
}

func main() {
	rootCmd.AddCommand(iface.Cmd)
	rootCmd.AddCommand(dump.Cmd)
	rootCmd.AddCommand(inject.Cmd)
	rootCmd.AddCommand(version.Cmd)

	if err := rootCmd.Execute(); err != nil {
		flog.Errorf("%v", err)
		os.Exit(1)
	}
}
