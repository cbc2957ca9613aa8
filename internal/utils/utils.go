package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/md5/internal/consts"
)

// BytesToWords loads a block as sixteen little-endian words.
func BytesToWords(bytes *[consts.BlockLen]uint8, words *[consts.BlockWords]uint32) {
	if consts.IsLittleEndian {
		*words = *(*[consts.BlockWords]uint32)(unsafe.Pointer(bytes))
		return
	}

	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[4*i:])
	}
}

// WordsToBytes stores the chaining words little-endian, in order.
func WordsToBytes(words *[4]uint32, bytes *[consts.DigestLen]uint8) {
	binary.LittleEndian.PutUint32(bytes[0:], words[0])
	binary.LittleEndian.PutUint32(bytes[4:], words[1])
	binary.LittleEndian.PutUint32(bytes[8:], words[2])
	binary.LittleEndian.PutUint32(bytes[12:], words[3])
}
