//go:build windows && !nopcap

package socket

import (
	"net"
	"strings"

	"github.com/gopacket/gopacket/pcap"

	"github.com/CURVoid/cursock/internal/pkg/addr"
)

// resolveAdapter enumerates the OS-visible adapters and extracts the IPv4
// and hardware address of the one whose identifier exactly matches name.
// No case folding, no partial matching.
func resolveAdapter(name string) (addr.IPv4, addr.Mac, error) {
	devs, err := pcap.FindAllDevs()
	if err != nil {
		return addr.IPv4{}, addr.Mac{}, errorf(KindSocket, "cannot enumerate adapters: %v", err)
	}

	for _, dev := range devs {
		if strings.TrimPrefix(dev.Name, npfPrefix) != name {
			continue
		}

		ip, ok := firstIPv4(dev)
		if !ok {
			return addr.IPv4{}, addr.Mac{}, errorf(KindSocket, "adapter %s has no IPv4 address", name)
		}
		mac, err := adapterMac(ip)
		if err != nil {
			return addr.IPv4{}, addr.Mac{}, err
		}
		return ip, mac, nil
	}

	return addr.IPv4{}, addr.Mac{}, errorf(KindInvalidArgument, "%s is not a valid adapter name", name)
}

func firstIPv4(dev pcap.Interface) (addr.IPv4, bool) {
	for _, a := range dev.Addresses {
		if v4 := a.IP.To4(); v4 != nil {
			return addr.NewIPv4([addr.IPv4Len]byte(v4)), true
		}
	}
	return addr.IPv4{}, false
}

// adapterMac finds the hardware address of the interface owning ip. npcap
// device entries carry no hardware address, so the OS interface table is
// matched by assigned IPv4 instead.
func adapterMac(ip addr.IPv4) (addr.Mac, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return addr.Mac{}, errorf(KindSocket, "cannot enumerate interfaces: %v", err)
	}

	want := net.IP(ip[:])
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || !ipnet.IP.Equal(want) {
				continue
			}
			if len(iface.HardwareAddr) != addr.MacLen {
				continue
			}
			return addr.NewMac([addr.MacLen]byte(iface.HardwareAddr)), nil
		}
	}

	return addr.Mac{}, errorf(KindSocket, "no interface carries %s", ip)
}
