package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword makes the bcrypt hash stored for the admin credentials.
// Cost 14 matches the hashes the deployed service was provisioned with.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return BytesToString(bytes), err
}

// CheckPasswordHash verifies a login attempt against the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
