package status

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns the blake3 hex digest of raw status-file content.
// Report manifests record it so a regenerated deck can note whether its
// inputs actually changed.
func Fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
