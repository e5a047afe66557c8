package auth

import "golang.org/x/crypto/bcrypt"

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut to
// this many bytes before hashing.
const maxPasswordBytes = 72

// BcryptHasher hashes passwords with bcrypt. Each call draws a fresh random
// salt, which bcrypt stores inside the returned hash.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher for cost; values below bcrypt.MinCost
// fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash hashes the first 72 bytes of plain. The cut may fall inside a
// multibyte character.
func (h *BcryptHasher) Hash(plain string) ([]byte, error) {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return bcrypt.GenerateFromPassword(b, h.cost)
}
