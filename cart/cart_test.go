package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPricing = Pricing{FlatFee: 200, FreeThreshold: 5000}

func breaker(qty int) Item {
	return Item{ID: "p1", Name: "Circuit Breaker", Price: 100, Quantity: qty, Stock: 5, Slug: "circuit-breaker"}
}

func TestAddClampsToStock(t *testing.T) {
	c := New()

	c.Add(breaker(3))
	require.Equal(t, 3, c.Items()[0].Quantity)

	// 3 + 4 exceeds the stock snapshot of 5
	c.Add(breaker(4))
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// further adds never push past stock
	c.Add(breaker(100))
	assert.Equal(t, 5, c.Items()[0].Quantity)
	assert.Len(t, c.Items(), 1)
}

func TestAddClampsFirstInsert(t *testing.T) {
	c := New()
	c.Add(breaker(12))
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := New()
	c.Add(breaker(0))
	c.Add(breaker(-4))
	assert.Empty(t, c.Items())
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(breaker(2))

	c.UpdateQuantity("p1", 4)
	assert.Equal(t, 4, c.Items()[0].Quantity)

	c.UpdateQuantity("p1", 99)
	assert.Equal(t, 5, c.Items()[0].Quantity, "update clamps to stock snapshot")

	c.UpdateQuantity("p1", 0)
	assert.Empty(t, c.Items(), "zero quantity removes the line")
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(Item{ID: "a", Price: 10, Quantity: 1, Stock: 10})
	c.Add(Item{ID: "b", Price: 20, Quantity: 1, Stock: 10})

	c.Remove("a")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "b", c.Items()[0].ID)

	c.Remove("missing") // no-op
	assert.Len(t, c.Items(), 1)

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.Subtotal())
}

func TestPricing(t *testing.T) {
	c := New()
	c.Add(Item{ID: "a", Name: "Item A", Price: 100, Quantity: 2, Stock: 10})
	c.Add(Item{ID: "b", Name: "Item B", Price: 50, Quantity: 1, Stock: 10})

	assert.Equal(t, 250.0, c.Subtotal())
	assert.Equal(t, 200.0, c.ShippingFee(testPricing), "below threshold pays the flat fee")
	assert.Equal(t, 450.0, c.Total(testPricing))
	assert.Equal(t, 3, c.Count())
}

func TestPricingIdempotent(t *testing.T) {
	c := New()
	c.Add(Item{ID: "a", Price: 1234.5, Quantity: 3, Stock: 10})

	first := c.Total(testPricing)
	second := c.Total(testPricing)
	assert.Equal(t, first, second)
	assert.Equal(t, c.Subtotal(), c.Subtotal())
}

func TestShippingThresholdBoundary(t *testing.T) {
	// Exactly at the threshold the fee still applies; free shipping requires
	// a strictly greater subtotal.
	at := New()
	at.Add(Item{ID: "a", Price: 5000, Quantity: 1, Stock: 5})
	assert.Equal(t, 200.0, at.ShippingFee(testPricing))

	above := New()
	above.Add(Item{ID: "a", Price: 5000.01, Quantity: 1, Stock: 5})
	assert.Equal(t, 0.0, above.ShippingFee(testPricing))
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Add(Item{ID: "a", Name: "Fan", Price: 3200, Image: "/uploads/fan.jpg", Quantity: 2, Stock: 4, Slug: "fan"})

	data, err := c.Snapshot()
	require.NoError(t, err)

	restored := Load(data)
	assert.Equal(t, c.Items(), restored.Items())
	assert.Equal(t, c.Subtotal(), restored.Subtotal())
}

func TestLoadDiscardsCorruptSnapshots(t *testing.T) {
	cases := [][]byte{
		[]byte("not json"),
		[]byte(`{"not":"an array"}`),
		[]byte(`42`),
		nil,
	}
	for _, data := range cases {
		c := Load(data)
		assert.Empty(t, c.Items(), "corrupt snapshot %q must load as empty cart", data)
	}
}

func TestLoadReclampsQuantities(t *testing.T) {
	// A tampered or stale snapshot may claim more than stock; Load runs the
	// entries back through Add, which clamps.
	data := []byte(`[{"id":"a","name":"Drill","price":900,"quantity":50,"stock":3}]`)
	c := Load(data)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity)
}

func TestEmptySnapshotIsArray(t *testing.T) {
	data, err := New().Snapshot()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
