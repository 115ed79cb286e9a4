package utils

import "golang.org/x/crypto/bcrypt"

// BcryptEncode hashes a password with bcrypt.
func BcryptEncode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// BcryptMatches verifies a password against the encoded representation.
func BcryptMatches(rawPassword, encodedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedPassword), []byte(rawPassword)) == nil
}
