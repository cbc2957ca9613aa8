package check

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/zeebo/assert"
)

func collect(t *testing.T, list string) ([]Entry, []int) {
	t.Helper()

	r := NewReader(strings.NewReader(list))
	var entries []Entry
	for r.Next() {
		entries = append(entries, r.Entry())
	}
	assert.NoError(t, r.Err())
	return entries, r.Malformed()
}

func TestReader(t *testing.T) {
	entries, malformed := collect(t, strings.Join([]string{
		"d41d8cd98f00b204e9800998ecf8427e  empty.txt",
		"1E50210A0202497FB79BC38B6ADE6C34 *some data.bin",
		"",
		"not a checksum line",
		"d41d8cd98f00b204e9800998ecf8427e empty.txt",
		"d41d8cd98f00b204e9800998ecf8427z  bad-hex.txt",
		"d41d8cd98f00b204e9800998ecf8427e  ",
		"900150983cd24fb0d6963f7d28e17f72  name  with  spaces\r",
	}, "\n"))

	assert.DeepEqual(t, malformed, []int{4, 5, 6, 7})
	assert.Equal(t, len(entries), 3)

	assert.Equal(t, entries[0], Entry{
		Line:   1,
		Digest: [16]byte{0xd4, 0x1d, 0x8c, 0xd9, 0x8f, 0x00, 0xb2, 0x04, 0xe9, 0x80, 0x09, 0x98, 0xec, 0xf8, 0x42, 0x7e},
		Name:   "empty.txt",
	})
	assert.Equal(t, entries[1], Entry{
		Line:   2,
		Digest: [16]byte{0x1e, 0x50, 0x21, 0x0a, 0x02, 0x02, 0x49, 0x7f, 0xb7, 0x9b, 0xc3, 0x8b, 0x6a, 0xde, 0x6c, 0x34},
		Name:   "some data.bin",
		Binary: true,
	})
	assert.Equal(t, entries[2].Line, 8)
	assert.Equal(t, entries[2].Name, "name  with  spaces")
}

func TestReader_Empty(t *testing.T) {
	entries, malformed := collect(t, "")
	assert.Equal(t, len(entries), 0)
	assert.Equal(t, len(malformed), 0)
}

func TestReader_Error(t *testing.T) {
	r := NewReader(iotest.ErrReader(iotest.ErrTimeout))
	assert.That(t, !r.Next())
	assert.Error(t, r.Err())
}
