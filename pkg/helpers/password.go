package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for stored credentials. DefaultCost keeps signup latency
// acceptable while staying resistant to offline cracking.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of a plain-text password. The salt is
// generated per call, so equal passwords produce different hashes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
