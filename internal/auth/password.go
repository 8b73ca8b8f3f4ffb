package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Output differs across
// calls for the same input.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed digest reads as a mismatch.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
