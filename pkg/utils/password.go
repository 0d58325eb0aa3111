package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plaintext with bcrypt. The salt is embedded
// in the resulting hash, so nothing else needs to be stored.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
