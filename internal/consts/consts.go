package consts

var IV = [...]uint32{IV0, IV1, IV2, IV3}

const (
	IV0 = 0x67452301
	IV1 = 0xEFCDAB89
	IV2 = 0x98BADCFE
	IV3 = 0x10325476
)

const (
	BlockLen   = 64
	BlockWords = BlockLen / 4
	DigestLen  = 16

	// LengthLen is the size of the trailing bit count in the final block.
	LengthLen = 8
)
