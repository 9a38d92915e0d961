package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns <prefix><unix millis>_<9 random base36 chars>.
// The key of a record in the store is its id.
func NewID(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomSuffix(9)
}

func randomSuffix(n int) string {
	b := uuid.New()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(idSuffixAlphabet[int(b[i])%len(idSuffixAlphabet)])
	}
	return sb.String()
}

// Now is the clock used for createdAt/updatedAt, truncated to milliseconds
// so timestamps survive a JSON round trip unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
