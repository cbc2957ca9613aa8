package md5

type vector struct {
	data string // literal input, used when size is zero
	size int    // generated input of size bytes, i % 251
	hash string
}

func (v vector) input() []byte {
	if v.size == 0 {
		return []byte(v.data)
	}
	out := make([]byte, v.size)
	for i := range out {
		out[i] = byte(i % 251)
	}
	return out
}

// the first seven are from RFC 1321, appendix A.5.
var vectors = []vector{
	{data: "", hash: "d41d8cd98f00b204e9800998ecf8427e"},
	{data: "a", hash: "0cc175b9c0f1b6a831c399e269772661"},
	{data: "abc", hash: "900150983cd24fb0d6963f7d28e17f72"},
	{data: "message digest", hash: "f96b697d7cb7938d525a2f31aaf161d0"},
	{data: "abcdefghijklmnopqrstuvwxyz", hash: "c3fcd3d76192e4007dfb496cca67e13b"},
	{data: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", hash: "d174ab98d277d9f5a5611c2c9f419d9f"},
	{data: "12345678901234567890123456789012345678901234567890123456789012345678901234567890", hash: "57edf4a22be3c955ac49da2e2107b67a"},
	{data: "The quick brown fox jumps over the lazy dog", hash: "9e107d9d372bb6826bd81d3542a419d6"},

	{size: 55, hash: "6912ee65fff2d9f9ce2508cddf8bcda0"},
	{size: 56, hash: "51fdd1acda72405dfdfa03fcb85896d7"},
	{size: 63, hash: "48a6295221902e8e0938f773a7185e72"},
	{size: 64, hash: "b2d3f56bc197fd985d5965079b5e7148"},
	{size: 65, hash: "8bd7053801c768420faf816fadba971c"},
	{size: 119, hash: "1c772251899a7ff007400b888d6b2042"},
	{size: 120, hash: "b7ba1efc6022e9ed272f00b8831e26e6"},
	{size: 127, hash: "8402b21e7bc7906493bae0dac017f1f9"},
	{size: 128, hash: "37eff01866ba3f538421b30b7cbefcac"},
	{size: 1000, hash: "a24f1e3ef66950e1327f210e3997ba2c"},
}
