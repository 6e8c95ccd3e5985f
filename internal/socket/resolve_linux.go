//go:build linux

package socket

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/CURVoid/cursock/internal/flog"
	"github.com/CURVoid/cursock/internal/pkg/addr"
)

// ifreq mirrors struct ifreq: the interface name in the first IFNAMSIZ
// bytes (NUL terminated), followed by a 24-byte request/response union.
//
//	off 16: int32 ifindex            (SIOCGIFINDEX)
//	off 16: sockaddr_in, IPv4 at 20  (SIOCGIFADDR)
//	off 16: sockaddr, MAC at 18      (SIOCGIFHWADDR)
type ifreq [unix.IFNAMSIZ + 24]byte

const (
	ifreqIndexOff = unix.IFNAMSIZ
	ifreqIPv4Off  = unix.IFNAMSIZ + 4
	ifreqMacOff   = unix.IFNAMSIZ + 2
)

func newIfreq(name string) (*ifreq, error) {
	if len(name) >= unix.IFNAMSIZ {
		return nil, errorf(KindParse, "interface name %q exceeds %d bytes", name, unix.IFNAMSIZ-1)
	}
	var r ifreq
	copy(r[:unix.IFNAMSIZ-1], name)
	return &r, nil
}

func (r *ifreq) ioctl(fd int, req uint) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(r)))
	if errno != 0 {
		return errno
	}
	return nil
}

func (r *ifreq) index() int {
	return int(int32(binary.NativeEndian.Uint32(r[ifreqIndexOff:])))
}

func (r *ifreq) ipv4() addr.IPv4 {
	return addr.NewIPv4([addr.IPv4Len]byte(r[ifreqIPv4Off : ifreqIPv4Off+addr.IPv4Len]))
}

func (r *ifreq) mac() addr.Mac {
	return addr.NewMac([addr.MacLen]byte(r[ifreqMacOff : ifreqMacOff+addr.MacLen]))
}

// resolveInterface queries index, IPv4 and hardware address for the named
// interface with three sequential ioctls against fd, reusing one request
// buffer. The first failure aborts the rest; no partial result is returned.
func resolveInterface(fd int, name string, debug bool) (int, addr.IPv4, addr.Mac, error) {
	r, err := newIfreq(name)
	if err != nil {
		return 0, addr.IPv4{}, addr.Mac{}, err
	}

	if err := r.ioctl(fd, unix.SIOCGIFINDEX); err != nil {
		if debug {
			flog.Debugf("SIOCGIFINDEX on %s: %v", name, err)
		}
		return 0, addr.IPv4{}, addr.Mac{}, errorf(KindSocket, "SIOCGIFINDEX failed on %s: %v", name, err)
	}
	index := r.index()

	if err := r.ioctl(fd, unix.SIOCGIFADDR); err != nil {
		if debug {
			flog.Debugf("SIOCGIFADDR on %s: %v", name, err)
		}
		return 0, addr.IPv4{}, addr.Mac{}, errorf(KindSocket, "SIOCGIFADDR failed on %s: %v", name, err)
	}
	ip := r.ipv4()

	if err := r.ioctl(fd, unix.SIOCGIFHWADDR); err != nil {
		if debug {
			flog.Debugf("SIOCGIFHWADDR on %s: %v", name, err)
		}
		return 0, addr.IPv4{}, addr.Mac{}, errorf(KindSocket, "SIOCGIFHWADDR failed on %s: %v", name, err)
	}

	return index, ip, r.mac(), nil
}
