//go:build linux

package socket

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/CURVoid/cursock/internal/flog"
	"github.com/CURVoid/cursock/internal/pkg/addr"
)

// rawChannel is the Linux backend: one AF_PACKET/SOCK_RAW socket bound to
// all protocols, addressed per send via sockaddr_ll.
type rawChannel struct {
	fd      int
	ifindex int
	srcIP   addr.IPv4
	srcMac  addr.Mac
}

// Open opens a raw channel on the named interface, e.g. "eth0".
func Open(iface string, debug bool) (Channel, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		if debug {
			flog.Debugf("socket(AF_PACKET, SOCK_RAW): %v", err)
		}
		return nil, errorf(KindInitialize, "cannot open AF_PACKET socket: %v", err)
	}

	ifindex, ip, mac, err := resolveInterface(fd, iface, debug)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}

	if debug {
		flog.Debugf("%d - %s, ip: %s, mac: %s", ifindex, iface, ip, mac)
	}

	return &rawChannel{
		fd:      fd,
		ifindex: ifindex,
		srcIP:   ip,
		srcMac:  mac,
	}, nil
}

func (c *rawChannel) Send(buf []byte, debug bool) (int, error) {
	sa := unix.SockaddrLinklayer{
		Ifindex: c.ifindex,
		Halen:   addr.MacLen,
	}
	copy(sa.Addr[:], c.srcMac[:])

	if err := unix.Sendto(c.fd, buf, 0, &sa); err != nil {
		if debug {
			flog.Debugf("sendto: %v", err)
		}
		return 0, errorf(KindSocket, "cannot send %d bytes: %v", len(buf), err)
	}

	if debug {
		flog.Debugf("sent %d bytes", len(buf))
	}
	return len(buf), nil
}

func (c *rawChannel) Recv(buf []byte, debug bool) (int, error) {
	n, _, err := unix.Recvfrom(c.fd, buf, 0)
	if err != nil {
		if debug {
			flog.Debugf("recvfrom: %v", err)
		}
		return 0, errorf(KindSocket, "cannot receive packet: %v", err)
	}

	if debug {
		flog.Debugf("received %d bytes", n)
	}
	return n, nil
}

func (c *rawChannel) RecvTimeout(buf []byte, debug bool, d time.Duration) (int, error) {
	return recvDeadline(func() (int, error) {
		return c.Recv(buf, debug)
	}, d)
}

func (c *rawChannel) Close() {
	if c.fd < 0 {
		return
	}
	unix.Close(c.fd)
	c.fd = -1
}

func (c *rawChannel) SrcIPv4() addr.IPv4 {
	return c.srcIP
}

func (c *rawChannel) SrcMac() addr.Mac {
	return c.srcMac
}

func htons(v uint16) uint16 {
	return (v << 8) | (v >> 8)
}
