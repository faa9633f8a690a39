package models

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProductID is the opaque unique identity of a product. Assigned once at
// creation and immutable thereafter.
//
// Format: <TYPE prefix>-<SIZE>-<base36 millis>-<random suffix>, uppercased,
// e.g. "SHI-M-LX2T4K9-A3F7Q". The format is a readability convenience only;
// consumers must treat the whole string as opaque.
type ProductID string

const randSuffixLen = 5

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewProductID derives a fresh identity from the product type and size plus
// the given timestamp and a random suffix. Collisions are negligible but not
// impossible; callers retry on a unique-constraint violation.
func NewProductID(ptype, size string, now time.Time) ProductID {
	prefix := ptype
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	id := fmt.Sprintf("%s-%s-%s-%s",
		prefix,
		size,
		strconv.FormatInt(now.UnixMilli(), 36),
		randBase36(randSuffixLen),
	)
	return ProductID(strings.ToUpper(id))
}

// ParseProductID validates a raw identity string. Only non-emptiness is
// checked; identities from old payloads may predate the current format.
func ParseProductID(s string) (ProductID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("product id must not be empty")
	}
	return ProductID(s), nil
}

// String returns the underlying string value.
func (id ProductID) String() string {
	return string(id)
}

func randBase36(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(buf)
}
