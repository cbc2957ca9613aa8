package md5

import (
	"encoding/binary"

	"github.com/zeebo/md5/internal/consts"
)

// pad writes the trailer for a message of length bytes whose final partial
// block is buf[:off]. It reports if the trailer spilled into extra, in which
// case extra holds a whole block that must follow buf.
func pad(buf, extra *[consts.BlockLen]byte, off int, length uint64) bool {
	buf[off] = 0x80
	clear(buf[off+1:])

	tail := buf
	spill := off > consts.BlockLen-consts.LengthLen-1
	if spill {
		*extra = [consts.BlockLen]byte{}
		tail = extra
	}

	// the bit count wraps past 2^64 bits, matching RFC 1321
	binary.LittleEndian.PutUint64(tail[consts.BlockLen-consts.LengthLen:], length<<3)
	return spill
}
