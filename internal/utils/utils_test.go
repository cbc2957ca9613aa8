package utils

import (
	"encoding/binary"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestBytesToWords(t *testing.T) {
	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	assert.Equal(t, words[0], uint32(0x03020100))
	assert.Equal(t, words[1], uint32(0x07060504))
	assert.Equal(t, words[15], uint32(0x3f3e3d3c))
}

func TestBytesToWords_Random(t *testing.T) {
	for n := 0; n < 1000; n++ {
		var bytes [64]uint8
		for i := range bytes {
			bytes[i] = uint8(pcg.Uint32())
		}

		var words [16]uint32
		BytesToWords(&bytes, &words)

		for i := range words {
			assert.Equal(t, words[i], binary.LittleEndian.Uint32(bytes[4*i:]))
		}
	}
}

func TestWordsToBytes(t *testing.T) {
	words := [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

	var bytes [16]uint8
	WordsToBytes(&words, &bytes)

	assert.Equal(t, bytes, [16]uint8{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	})
}
