package md5

import "github.com/zeebo/md5/internal/consts"

// Size is the size of an MD5 checksum in bytes.
const Size = consts.DigestLen

// BlockSize is the block size of MD5 in bytes.
const BlockSize = consts.BlockLen

var iv = consts.IV
