// Package compress implements the MD5 block transform.
package compress

import "math/bits"

// add is addition modulo 2^32.
func add(x, y uint32) uint32 { return x + y }

func f(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func g(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }
func i(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// Block folds one block of message words into the chaining state.
func Block(state *[4]uint32, m *[16]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]

	for step := 0; step < 64; step++ {
		var x uint32
		switch round(step) {
		case 0:
			x = f(b, c, d)
		case 1:
			x = g(b, c, d)
		case 2:
			x = h(b, c, d)
		default:
			x = i(b, c, d)
		}

		x = add(add(add(a, x), m[index[step]]), table[step])
		a = add(b, bits.RotateLeft32(x, int(shift[step])))

		// the freshly computed word plays b in the next step
		a, b, c, d = d, a, b, c
	}

	state[0] = add(state[0], a)
	state[1] = add(state[1], b)
	state[2] = add(state[2], c)
	state[3] = add(state[3], d)
}
