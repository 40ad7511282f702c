// Package idempotency derives Idempotency-Key header values from the salient
// fields of a create request, so that repeated submissions of the same form
// (double clicks, client retries) carry the same key upstream.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Header is the name of the HTTP header that carries the key.
const Header = "Idempotency-Key"

// Separator joins the input values before hashing.
const Separator = "|"

// Key returns a short base-36 key for values using a 32-bit rolling hash
// (acc = acc*31 + c over the UTF-16 code units of the joined string).
//
// The result is deterministic and order sensitive but not collision
// resistant. Its exact output is a cross-language contract: the dashboard
// frontend computes the same value, so the algorithm must not change.
func Key(values ...string) string {
	joined := strings.Join(values, Separator)

	var acc int32
	for _, c := range utf16.Encode([]rune(joined)) {
		acc = acc*31 + int32(c)
	}

	// Widen before negating so math.MinInt32 stays positive.
	n := int64(acc)
	if n < 0 {
		n = -n
	}
	return strconv.FormatInt(n, 36)
}

// StrongKey returns the lowercase hex SHA-256 digest of the joined values.
// Use it where collisions matter more than a compact header value.
func StrongKey(values ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, Separator)))
	return hex.EncodeToString(sum[:])
}
