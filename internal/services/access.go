package services

import (
	"crypto/rand"
	"math/big"

	"heirloom-gallery-backend/internal/models"
)

// passwordAlphabet omits visually ambiguous characters (l, I, O) and the
// digits 0 and 1.
const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultPasswordLength = 12

// GeneratePassword draws length characters uniformly from passwordAlphabet.
// A length of 0 or below falls back to the default.
func GeneratePassword(length int) string {
	if length <= 0 {
		length = DefaultPasswordLength
	}
	password := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		password[i] = passwordAlphabet[n.Int64()]
	}
	return string(password)
}

// VerifyPassword reports whether supplied matches the gallery's stored
// password exactly. No case-folding, no hashing: unlocking is an access
// gate enforced by the public handlers, not a repository-level permission.
func VerifyPassword(gallery *models.Gallery, supplied string) bool {
	return gallery.Password == supplied
}
