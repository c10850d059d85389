package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain-text password for storage.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether pass matches the stored bcrypt hash.
func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
