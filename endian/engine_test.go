package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	if first == 0x01 {
		require.Equal(t, binary.BigEndian, CheckEndianness())
		require.True(t, IsBigEndian(GetNativeEngine()))
	} else {
		require.Equal(t, binary.LittleEndian, CheckEndianness())
		require.False(t, IsBigEndian(GetNativeEngine()))
	}
}

func TestEngines_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 0xCAFEBABE)
		buf = engine.AppendUint64(buf, 42)
		require.Len(t, buf, 12)
		require.Equal(t, uint32(0xCAFEBABE), engine.Uint32(buf[0:4]))
		require.Equal(t, uint64(42), engine.Uint64(buf[4:12]))
	}

	require.Equal(t, []byte{0x00, 0x01}, GetBigEndianEngine().AppendUint16(nil, 1))
	require.Equal(t, []byte{0x01, 0x00}, GetLittleEndianEngine().AppendUint16(nil, 1))
}
