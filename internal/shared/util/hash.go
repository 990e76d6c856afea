package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// PrincipalKey maps a principal ("guest:<id>", an account id) to a stable
// hex name usable as a directory, object prefix or key namespace.
// Surrounding whitespace is ignored.
func PrincipalKey(principal string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(principal)))
	return hex.EncodeToString(sum[:])
}
