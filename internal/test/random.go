package test

import "math/rand/v2"

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomID returns an identifier shaped like provider object ids, e.g. "order_3fJk9QpL2mXa7R".
func RandomID(prefix string) string {
	buf := make([]byte, 14)
	for i := range buf {
		buf[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return prefix + "_" + string(buf)
}
