package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of plain using the given cost.
// bcrypt embeds a random salt, so hashing the same password twice yields
// two different digests.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt digest against a plain password in
// constant time. A malformed digest simply fails verification; no error
// reaches the caller.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
