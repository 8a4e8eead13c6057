// Package cart is the storefront cart state machine. The cart lives with the
// client (serialized to local storage between page loads); this package keeps
// the transitions and the checkout arithmetic in one place so the quote
// endpoint and the storefront price a cart identically.
package cart

import "encoding/json"

// Item is one cart line. Price and Stock are snapshots taken when the item
// was added; quantities are clamped against the stock snapshot, not live
// stock.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Stock    int     `json:"stock"`
	Slug     string  `json:"slug"`
}

// Pricing holds the shipping rule: a flat fee below the free-shipping
// threshold, zero above it (strictly greater than).
type Pricing struct {
	FlatFee       float64
	FreeThreshold float64
}

// Cart is an ordered collection of line items, one per product.
type Cart struct {
	items []Item
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Load deserializes a cart snapshot. A corrupt or non-array value yields an
// empty cart rather than an error; a stale snapshot must never break the
// storefront.
func Load(data []byte) *Cart {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return &Cart{}
	}
	c := &Cart{}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Snapshot serializes the cart for client storage.
func (c *Cart) Snapshot() ([]byte, error) {
	if c.items == nil {
		return json.Marshal([]Item{})
	}
	return json.Marshal(c.items)
}

// Add inserts item or, if a line with the same product id exists, raises its
// quantity. The stored quantity never exceeds the line's stock snapshot, no
// matter how many times Add is called.
func (c *Cart) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity = clamp(c.items[i].Quantity+item.Quantity, c.items[i].Stock)
			return
		}
	}
	item.Quantity = clamp(item.Quantity, item.Stock)
	c.items = append(c.items, item)
}

// UpdateQuantity sets a line's quantity, clamped to its stock snapshot.
// A quantity of zero or less removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = clamp(quantity, c.items[i].Stock)
			return
		}
	}
}

// Remove deletes the line with the given product id, if present.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the sum of price × quantity over all lines.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ShippingFee applies the threshold rule: free only when the subtotal is
// strictly above the threshold. An order of exactly the threshold pays the
// flat fee.
func (c *Cart) ShippingFee(p Pricing) float64 {
	if c.Subtotal() > p.FreeThreshold {
		return 0
	}
	return p.FlatFee
}

// Total is subtotal plus shipping.
func (c *Cart) Total(p Pricing) float64 {
	return c.Subtotal() + c.ShippingFee(p)
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
