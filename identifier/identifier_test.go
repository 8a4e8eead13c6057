package identifier

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Circuit Breakers", "circuit-breakers"},
		{"punctuation stripped", "Wires & Cables!!", "wires-cables"},
		{"whitespace collapsed", "  LED   Bulbs  ", "led-bulbs"},
		{"hyphen runs collapsed", "Heavy--Duty - Switches", "heavy-duty-switches"},
		{"digits kept", "3-Phase Motor 5HP", "3-phase-motor-5hp"},
		{"already clean", "extension-cords", "extension-cords"},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyDeterministicAndWellFormed(t *testing.T) {
	wellFormed := regexp.MustCompile(`^$|^[a-z0-9]+(-[a-z0-9]+)*$`)

	names := []string{
		"Zahid Electric Store",
		"UPS / Inverters (1000W)",
		"Ceiling Fans — 56\"",
		"  spaced   out   name  ",
	}
	for _, name := range names {
		first := Slugify(name)
		second := Slugify(name)
		require.Equal(t, first, second, "slug must be deterministic for %q", name)
		assert.Regexp(t, wellFormed, first, "slug for %q", name)
		assert.False(t, strings.HasPrefix(first, "-"))
		assert.False(t, strings.HasSuffix(first, "-"))
	}
}

func TestNewSKUFormat(t *testing.T) {
	sku := NewSKU()
	assert.True(t, strings.HasPrefix(sku, "VW"))
	assert.Regexp(t, `^VW\d{13}[0-9A-Z]{5}$`, sku)
	assert.Equal(t, strings.ToUpper(sku), sku)
}

func TestNewOrderNumberFormat(t *testing.T) {
	num := NewOrderNumber()
	assert.True(t, strings.HasPrefix(num, "ORD"))
	assert.Regexp(t, `^ORD\d{13}[0-9A-Z]{5}$`, num)
}

// Five base36 suffix chars carry ~26 bits, so a tight loop that lands
// thousands of ids in the same millisecond can birthday-collide. Uniqueness
// is statistical; the DB unique index is the real guarantee. The batch must
// still be almost entirely distinct.
func TestBatchUniqueness(t *testing.T) {
	const (
		n         = 10000
		tolerance = 10
	)

	skus := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		skus[NewSKU()] = true
	}
	assert.GreaterOrEqual(t, len(skus), n-tolerance, "SKU batch has too many duplicates")

	orders := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		orders[NewOrderNumber()] = true
	}
	assert.GreaterOrEqual(t, len(orders), n-tolerance, "order number batch has too many duplicates")
}
