//go:build (!linux && !windows) || (windows && nopcap)

package socket

import "runtime"

// Open fails on platforms without a raw-socket backend.
func Open(iface string, debug bool) (Channel, error) {
	_ = iface
	_ = debug
	return nil, errorf(KindUnsupportedOS, "%s is not supported yet", runtime.GOOS)
}
