package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades hash time for brute-force resistance; 12 rounds keeps
// verification well under interactive-login latency on current hardware.
const bcryptCost = 12

// bcrypt only keys on the first 72 bytes of input. Longer passwords are
// truncated rather than rejected so any password the API accepts (up to
// 255 chars) hashes cleanly; the same truncation applies on compare.
const bcryptMaxBytes = 72

func truncateForBcrypt(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncateForBcrypt(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncateForBcrypt(plain)) == nil
}
