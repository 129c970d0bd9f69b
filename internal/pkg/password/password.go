package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// TemporaryLength is the length of generated temporary passwords
	TemporaryLength = 8

	temporaryAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Hash hashes a password using bcrypt
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateTemporary generates a random temporary password of the given
// length from a mixed-case alphanumeric alphabet.
func GenerateTemporary(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(temporaryAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = temporaryAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// ValidatePassword checks if password meets requirements
func ValidatePassword(password string) bool {
	// Minimum 8 characters
	return len(password) >= 8
}
