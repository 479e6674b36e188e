package golingo

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey computes the cache key for a translation unit: the hex SHA-256
// digest of the exact (content, sourceLang, targetLang) tuple joined with "|".
// The separator never appears in language codes, so distinct tuples with
// valid codes always produce distinct input strings.
func ContentKey(content, sourceLang, targetLang string) string {
	combined := content + "|" + sourceLang + "|" + targetLang
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:])
}

// ShortKey returns an abbreviated form of a cache key for logging.
func ShortKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8]
}
