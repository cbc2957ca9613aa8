package consts

import "golang.org/x/sys/cpu"

// IsLittleEndian reports if words can be loaded directly out of byte buffers.
const IsLittleEndian = !cpu.IsBigEndian
