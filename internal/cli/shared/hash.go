package shared

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// BLAKE3Hex returns lowercase hex encoded digest for content.
func BLAKE3Hex(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// MatchesDigest reports whether content hashes to digest.
func MatchesDigest(digest string, content []byte) bool {
	return BLAKE3Hex(content) == digest
}
