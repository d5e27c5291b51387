package upstream

import "math/rand/v2"

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxRandomLength bounds the X-Requested-With value.
const maxRandomLength = 20

// RandomLetters returns a string of 1 to 20 ASCII letters.
func RandomLetters() string {
	n := rand.IntN(maxRandomLength) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}
