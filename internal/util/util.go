package util

import (
	"crypto/sha1"
	"encoding/hex"
)

// ReportID is a stable identifier for one report edition, derived from its
// relative URL on the index page.
func ReportID(path string) string {
	hasher := sha1.New()
	hasher.Write([]byte(path))

	return hex.EncodeToString(hasher.Sum(nil))
}
