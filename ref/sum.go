// Package ref is a direct, unoptimized MD5 used to check the streaming
// implementation. It pads the whole message in memory.
package ref

import (
	"encoding/binary"
	"unsafe"
)

// Sum returns the MD5 digest of input.
func Sum(input []byte) (out [16]byte) {
	padLen := blockLen - (len(input)+8)%blockLen

	msg := make([]byte, len(input)+padLen+8)
	copy(msg, input)
	msg[len(input)] = 0x80
	binary.LittleEndian.PutUint64(msg[len(msg)-8:], uint64(len(input))<<3)

	state := [4]uint32{iv0, iv1, iv2, iv3}
	for len(msg) > 0 {
		var blockPtr *[16]uint32
		if isLittleEndian {
			blockPtr = (*[16]uint32)(unsafe.Pointer(&msg[0]))
		} else {
			var block [16]uint32
			bytesToWords(msg, &block)
			blockPtr = &block
		}

		Block(&state, blockPtr)
		msg = msg[blockLen:]
	}

	for i, w := range state {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}
