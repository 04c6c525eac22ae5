package password

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost matches the cost of hashes already stored by the dashboard
	DefaultCost = 10
)

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash in constant time.
// An empty hash never matches.
func Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
