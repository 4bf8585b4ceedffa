package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashJSON returns a stable hex digest over the JSON encodings of vals.
// Values that cannot be marshaled yield an error.
func HashJSON(vals ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, v := range vals {
		if err := enc.Encode(v); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
