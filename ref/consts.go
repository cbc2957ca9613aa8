package ref

import (
	"encoding/binary"
	"unsafe"
)

const (
	iv0 = 0x67452301
	iv1 = 0xefcdab89
	iv2 = 0x98badcfe
	iv3 = 0x10325476
)

const blockLen = 64

var isLittleEndian = *(*uint32)(unsafe.Pointer(&[4]byte{0, 0, 0, 1})) != 1

func bytesToWords(bytes []byte, words *[16]uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[4*i:])
	}
}
