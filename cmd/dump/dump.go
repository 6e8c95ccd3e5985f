package dump

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/spf13/cobra"

	"github.com/CURVoid/cursock/internal/conf"
	"github.com/CURVoid/cursock/internal/flog"
	"github.com/CURVoid/cursock/internal/socket"
)

var (
	cfgPath string
	ifName  string
	debug   bool
	count   int
	timeout time.Duration
	hexDump bool
)

var Cmd = &cobra.Command{
	Use:   "dump",
	Short: "Capture frames and print a per-layer summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := conf.Resolve(cfgPath, ifName, debug)
		if err != nil {
			return err
		}
		if err := c.SetupLogging(); err != nil {
			return err
		}
		if timeout == 0 {
			timeout = c.Capture.Timeout
		}

		ch, err := socket.Open(c.Capture.Interface, c.Capture.Debug)
		if err != nil {
			return err
		}
		defer ch.Close()

		interrupted := make(chan os.Signal, 1)
		signal.Notify(interrupted, os.Interrupt)
		defer signal.Stop(interrupted)

		buf := make([]byte, c.Capture.Snaplen)
		for i := 0; count == 0 || i < count; i++ {
			select {
			case <-interrupted:
				flog.Infof("interrupted after %d frames", i)
				return nil
			default:
			}

			var n int
			if timeout > 0 {
				n, err = ch.RecvTimeout(buf, c.Capture.Debug, timeout)
			} else {
				n, err = ch.Recv(buf, c.Capture.Debug)
			}
			if errors.Is(err, socket.KindTimeout) {
				// After a timed-out read the channel may still have a
				// receive in flight, so stop instead of reusing it.
				flog.Warnf("no frame within %s, stopping", timeout)
				return nil
			}
			if err != nil {
				return err
			}

			printFrame(buf[:n])
		}
		return nil
	},
}

func printFrame(frame []byte) {
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if hexDump {
		fmt.Println(pkt.Dump())
		return
	}
	fmt.Println(pkt.String())
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	Cmd.Flags().StringVarP(&ifName, "iface", "i", "", "interface name")
	Cmd.Flags().BoolVarP(&debug, "debug", "d", false, "verbose per-operation logging")
	Cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many frames (0 = until interrupted)")
	Cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "per-read deadline (0 = block)")
	Cmd.Flags().BoolVarP(&hexDump, "hex", "x", false, "full hex dump instead of the layer summary")
}
