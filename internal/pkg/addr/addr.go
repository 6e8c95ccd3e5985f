// Package addr provides fixed-width address values for link-layer I/O.
//
// Unlike net.IP and net.HardwareAddr, which are variable-length slices,
// IPv4 and Mac are value types with an exact byte-array representation,
// so converting to bytes and back always reproduces the original value.
package addr

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	IPv4Len = 4
	MacLen  = 6
)

// IPv4 is a 4-byte IPv4 address in network byte order.
type IPv4 [IPv4Len]byte

// Mac is a 6-byte hardware address.
type Mac [MacLen]byte

// NewIPv4 builds an address from its network-order bytes.
func NewIPv4(b [IPv4Len]byte) IPv4 {
	return IPv4(b)
}

// Bytes returns the network-order bytes of the address.
func (ip IPv4) Bytes() [IPv4Len]byte {
	return [IPv4Len]byte(ip)
}

func (ip IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// ParseIPv4 parses dotted-decimal notation, e.g. "192.168.1.1".
func ParseIPv4(s string) (IPv4, error) {
	var ip IPv4
	parts := strings.Split(s, ".")
	if len(parts) != IPv4Len {
		return ip, fmt.Errorf("invalid IPv4 address %q: want 4 octets, got %d", s, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return IPv4{}, fmt.Errorf("invalid IPv4 address %q: bad octet %q", s, p)
		}
		ip[i] = byte(v)
	}
	return ip, nil
}

// NewMac builds a hardware address from its bytes.
func NewMac(b [MacLen]byte) Mac {
	return Mac(b)
}

// Bytes returns the bytes of the hardware address.
func (m Mac) Bytes() [MacLen]byte {
	return [MacLen]byte(m)
}

func (m Mac) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// ParseMac parses colon-separated hex octets, e.g. "aa:bb:cc:00:11:22".
func ParseMac(s string) (Mac, error) {
	var mac Mac
	parts := strings.Split(s, ":")
	if len(parts) != MacLen {
		return mac, fmt.Errorf("invalid hardware address %q: want 6 octets, got %d", s, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Mac{}, fmt.Errorf("invalid hardware address %q: bad octet %q", s, p)
		}
		mac[i] = byte(v)
	}
	return mac, nil
}
