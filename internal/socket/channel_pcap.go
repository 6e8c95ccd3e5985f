//go:build windows && !nopcap

package socket

import (
	"time"

	"github.com/gopacket/gopacket/pcap"

	"github.com/CURVoid/cursock/internal/flog"
	"github.com/CURVoid/cursock/internal/pkg/addr"
)

// npfPrefix turns an adapter identifier like "{GUID}" into the device
// string npcap expects.
const npfPrefix = `\Device\NPF_`

const pcapSnaplen = 65535

// pcapChannel is the Windows backend: an npcap adapter handle opened in
// promiscuous mode.
type pcapChannel struct {
	handle *pcap.Handle
	name   string
	srcIP  addr.IPv4
	srcMac addr.Mac
}

// Open opens a raw channel on the named adapter. The name is the npcap
// adapter identifier, e.g. "{D37YDFA1-7F4F-F09E-V622-5PACEF22AE49}".
func Open(iface string, debug bool) (Channel, error) {
	ip, mac, err := resolveAdapter(iface)
	if err != nil {
		return nil, err
	}

	if debug {
		flog.Debugf("%s - ip: %s, mac: %s", iface, ip, mac)
	}

	handle, err := pcap.OpenLive(npfPrefix+iface, pcapSnaplen, true, pcap.BlockForever)
	if err != nil {
		return nil, errorf(KindSocket, "cannot open adapter %s: %v", iface, err)
	}

	return &pcapChannel{
		handle: handle,
		name:   iface,
		srcIP:  ip,
		srcMac: mac,
	}, nil
}

func (c *pcapChannel) Send(buf []byte, debug bool) (int, error) {
	if err := c.handle.WritePacketData(buf); err != nil {
		return 0, errorf(KindSocket, "cannot send %d bytes on %s: %v", len(buf), c.name, err)
	}

	if debug {
		flog.Debugf("sent %d bytes", len(buf))
	}
	return len(buf), nil
}

func (c *pcapChannel) Recv(buf []byte, debug bool) (int, error) {
	frame, ci, err := c.handle.ReadPacketData()
	if err == pcap.NextErrorTimeoutExpired {
		return 0, errorf(KindTimeout, "reading from %s timed out", c.name)
	}
	if err != nil {
		return 0, errorf(KindSocket, "cannot receive packet on %s: %v", c.name, err)
	}

	n := fill(buf, frame)
	if debug {
		flog.Debugf("received %d bytes (captured %d)", n, ci.CaptureLength)
	}
	return n, nil
}

func (c *pcapChannel) RecvTimeout(buf []byte, debug bool, d time.Duration) (int, error) {
	return recvDeadline(func() (int, error) {
		return c.Recv(buf, debug)
	}, d)
}

func (c *pcapChannel) Close() {
	if c.handle == nil {
		return
	}
	c.handle.Close()
	c.handle = nil
}

func (c *pcapChannel) SrcIPv4() addr.IPv4 {
	return c.srcIP
}

func (c *pcapChannel) SrcMac() addr.Mac {
	return c.srcMac
}
