// Package identifier produces the human-readable identifiers used across
// the store: URL slugs, product SKUs and order numbers.
package identifier

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	skuPrefix         = "VW"
	orderNumberPrefix = "ORD"
	suffixAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength      = 5
)

// Slugify derives a URL slug from a display name: lowercase, strip anything
// outside [a-z0-9 -], turn whitespace runs into single hyphens and collapse
// hyphen runs. Deterministic for a given name, but NOT globally unique —
// callers must check for an existing record with the same slug before insert.
func Slugify(name string) string {
	s := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.Join(strings.Fields(s), "-")

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return strings.Trim(s, "-")
}

// NewSKU generates a product SKU: fixed prefix, epoch milliseconds and a
// short random base36 suffix. Collisions are possible in principle; the
// unique index on products.sku is the backstop.
func NewSKU() string {
	return skuPrefix + stamp()
}

// NewOrderNumber generates an order number with the same scheme as NewSKU.
// The unique index on orders.order_number rejects the (vanishingly rare)
// duplicate, which callers surface as a retryable error.
func NewOrderNumber() string {
	return orderNumberPrefix + stamp()
}

func stamp() string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}
