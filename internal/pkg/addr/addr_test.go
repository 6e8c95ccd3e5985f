package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4RoundTrip(t *testing.T) {
	inputs := [][IPv4Len]byte{
		{0, 0, 0, 0},
		{192, 168, 1, 1},
		{255, 255, 255, 255},
		{10, 0, 42, 7},
	}
	for _, b := range inputs {
		assert.Equal(t, b, NewIPv4(b).Bytes())
	}
}

func TestMacRoundTrip(t *testing.T) {
	inputs := [][MacLen]byte{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for _, b := range inputs {
		assert.Equal(t, b, NewMac(b).Bytes())
	}
}

func TestIPv4String(t *testing.T) {
	assert.Equal(t, "192.168.1.1", NewIPv4([4]byte{192, 168, 1, 1}).String())
	assert.Equal(t, "0.0.0.0", IPv4{}.String())
	assert.Equal(t, "255.255.255.255", NewIPv4([4]byte{255, 255, 255, 255}).String())
}

func TestMacString(t *testing.T) {
	assert.Equal(t, "00:00:00:00:00:01", NewMac([6]byte{0, 0, 0, 0, 0, 1}).String())
	assert.Equal(t, "de:ad:be:ef:00:01", NewMac([6]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}).String())
}

func TestParseIPv4(t *testing.T) {
	ip, err := ParseIPv4("10.20.30.40")
	require.NoError(t, err)
	assert.Equal(t, NewIPv4([4]byte{10, 20, 30, 40}), ip)

	for _, bad := range []string{"", "1.2.3", "1.2.3.4.5", "1.2.3.256", "a.b.c.d"} {
		_, err := ParseIPv4(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseMac(t *testing.T) {
	mac, err := ParseMac("de:ad:be:ef:00:01")
	require.NoError(t, err)
	assert.Equal(t, NewMac([6]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}), mac)

	for _, bad := range []string{"", "de:ad:be:ef:00", "de:ad:be:ef:00:01:02", "zz:ad:be:ef:00:01"} {
		_, err := ParseMac(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseFormatsRoundTrip(t *testing.T) {
	ip, err := ParseIPv4(NewIPv4([4]byte{172, 16, 254, 3}).String())
	require.NoError(t, err)
	assert.Equal(t, NewIPv4([4]byte{172, 16, 254, 3}), ip)

	mac, err := ParseMac(NewMac([6]byte{1, 2, 3, 4, 5, 6}).String())
	require.NoError(t, err)
	assert.Equal(t, NewMac([6]byte{1, 2, 3, 4, 5, 6}), mac)
}
