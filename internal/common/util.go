package common

import (
	"encoding/hex"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Fingerprint is a stable 128-bit murmur3 digest, hex encoded.
func Fingerprint(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	b := make([]byte, 16)
	for i := 0; i < 8; i++ {
		b[i] = byte(h1 >> (56 - 8*i))
		b[8+i] = byte(h2 >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

func MergeString(s ...string) string {
	return strings.Join(s, "#")
}
