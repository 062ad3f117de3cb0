package dedup

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Store remembers keys that were already handled.
type Store interface {
	Seen(ctx context.Context, key string) bool
	Mark(ctx context.Context, key string) error
}

// Key is the hex sha1 of the concatenated parts.
func Key(parts ...string) string {
	h := sha1.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(h[:])
}
