// Package passpkg hashes and checks passwords with bcrypt.
package passpkg

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of the password.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Check reports whether password matches the hash.
func Check(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
