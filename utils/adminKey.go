package authUtils

import "golang.org/x/crypto/bcrypt"

// HashAdminKey returns the bcrypt hash to put in ADMIN_KEY_HASH.
func HashAdminKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// AdminKeyMatches reports whether candidate hashes to hash. An empty hash
// never matches, so admin routes stay closed until one is configured.
func AdminKeyMatches(hash, candidate string) bool {
	if hash == "" || candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
