// Package socket provides raw link-layer packet I/O on a named network
// interface. A Channel moves opaque frames only: it never interprets,
// filters or checksums their contents.
//
// The backend is selected at build time: an AF_PACKET socket on Linux, an
// npcap adapter on Windows, and a stub that fails with KindUnsupportedOS
// everywhere else.
package socket

import (
	"time"

	"github.com/CURVoid/cursock/internal/pkg/addr"
)

// Channel is a raw capture/injection channel bound to one interface.
//
// A Channel owns its platform handle exclusively and must be released with
// Close; it is not internally synchronized, so callers issuing concurrent
// operations on one Channel have to serialize themselves. The source
// addresses are resolved once at open time and never refreshed.
type Channel interface {
	// Send transmits one frame. It returns the number of bytes the OS
	// accepted. With debug set, the count and any OS diagnostic are logged.
	Send(buf []byte, debug bool) (int, error)

	// Recv blocks until a frame arrives and fills buf with it, returning
	// the number of bytes written. A frame larger than buf is silently
	// truncated to len(buf).
	Recv(buf []byte, debug bool) (int, error)

	// RecvTimeout is Recv bounded by d. On deadline expiry it returns a
	// KindTimeout error while the underlying read keeps running in the
	// background; buf must then be treated as undefined, and no further
	// operation may be started on the Channel until that read is known to
	// have finished.
	RecvTimeout(buf []byte, debug bool, d time.Duration) (int, error)

	// Close releases the platform handle. Calling it again is a no-op.
	Close()

	// SrcIPv4 returns the interface's IPv4 address as of open time.
	SrcIPv4() addr.IPv4

	// SrcMac returns the interface's hardware address as of open time.
	SrcMac() addr.Mac
}

type recvResult struct {
	n   int
	err error
}

// recvDeadline runs read on its own goroutine and waits for its result or
// for d to elapse, whichever comes first. An abandoned read finishes into
// the buffered channel, so it never leaks blocked on the send; the OS call
// itself is not cancelled.
func recvDeadline(read func() (int, error), d time.Duration) (int, error) {
	done := make(chan recvResult, 1)
	go func() {
		n, err := read()
		done <- recvResult{n: n, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.n, r.err
	case <-timer.C:
		return 0, errorf(KindTimeout, "receive timed out after %s", d)
	}
}

// fill copies a captured frame into the caller's buffer, truncating to its
// capacity. Oversized frames are delivered best-effort, not reported as an
// error.
func fill(buf, frame []byte) int {
	return copy(buf, frame)
}
