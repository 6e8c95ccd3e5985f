//go:build linux

package socket

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Frames sent on lo loop back to the same channel, which makes lo the one
// interface where send/receive symmetry can be checked without a peer.
func TestLoopbackSendRecv(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires CAP_NET_RAW")
	}

	ch, err := Open("lo", false)
	require.NoError(t, err)
	defer ch.Close()

	marker := []byte("cursock-loopback-test")
	frame := buildTestFrame(marker)

	n, err := ch.Send(frame, false)
	require.NoError(t, err)
	assert.Equal(t, len(frame), n)

	buf := make([]byte, 2048)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		n, err := ch.RecvTimeout(buf, false, time.Until(deadline))
		require.NoError(t, err)
		if bytes.Contains(buf[:n], marker) {
			assert.Equal(t, frame, buf[:len(frame)])
			return
		}
	}
	t.Fatal("sent frame never observed on lo")
}

// buildTestFrame wraps payload in a minimal Ethernet frame with the local
// experimental ethertype 0x88b5 so it collides with nothing real.
func buildTestFrame(payload []byte) []byte {
	frame := make([]byte, 14+len(payload))
	binary.BigEndian.PutUint16(frame[12:], 0x88b5)
	copy(frame[14:], payload)
	return frame
}
