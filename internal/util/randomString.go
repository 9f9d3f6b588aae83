package util

import (
	"crypto/rand"
	"math/big"
)

var DefaultRandomStringRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandomString draws length runes from runes using crypto/rand. Used for
// generated user passwords, so a weak source is not acceptable here.
func RandomString(length int, runes []rune) string {
	out := make([]rune, length)
	maxIdx := big.NewInt(int64(len(runes)))
	for i := range out {
		n, err := rand.Int(rand.Reader, maxIdx)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		out[i] = runes[n.Int64()]
	}
	return string(out)
}
