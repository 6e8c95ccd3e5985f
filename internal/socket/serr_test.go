package socket

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	err := errorf(KindSocket, "sendto failed: %v", errors.New("EPERM"))

	assert.True(t, errors.Is(err, KindSocket))
	assert.False(t, errors.Is(err, KindTimeout))
	assert.True(t, errors.Is(err, &Error{Kind: KindSocket}))
}

func TestKindMatchingThroughWrap(t *testing.T) {
	err := fmt.Errorf("open eth0: %w", newError(KindInvalidArgument, "eth0 is not a valid adapter name"))
	assert.True(t, errors.Is(err, KindInvalidArgument))
}

func TestErrorMessage(t *testing.T) {
	err := newError(KindTimeout, "receive timed out after 5ms")
	assert.Equal(t, "timeout: receive timed out after 5ms", err.Error())

	var serr *Error
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, KindTimeout, serr.Kind)
}

func TestKindLabels(t *testing.T) {
	labels := map[Kind]string{
		KindUnsupportedOS:   "unsupported os",
		KindParse:           "parse failure",
		KindInitialize:      "initialization failure",
		KindSocket:          "socket operation failure",
		KindTimeout:         "timeout",
		KindInvalidArgument: "invalid argument",
	}
	for kind, want := range labels {
		assert.Equal(t, want, kind.Error())
	}
}
