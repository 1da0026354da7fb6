package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA256 hex digest the web application stores in Users.PasswordHash.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
