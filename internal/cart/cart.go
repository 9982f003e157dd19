package cart

// Item is one product line in the cart.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the cart state container. Items are kept in insertion order
// with ProductID unique across lines, and the running total is
// re-derived from scratch after every mutation so it can never drift
// from the items regardless of mutation order.
//
// The cart is purely in-memory: it lives for one interactive session
// and is never persisted locally. Syncing with the server cart is an
// explicit operation owned by the caller.
type Cart struct {
	items []Item
	total float64
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the item into the cart. If a line with the same ProductID
// already exists its quantity is incremented by one and the incoming
// price and quantity are ignored; otherwise the item is appended with
// quantity fixed at one regardless of the input's quantity.
func (c *Cart) Add(item Item) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			c.recompute()
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.recompute()
}

// Remove deletes the line with the given ProductID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.recompute()
}

// UpdateQuantity sets the quantity of the matching line verbatim.
// The container accepts any value, including zero and negatives; the
// caller owns validation. Updating an absent product is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			c.recompute()
			return
		}
	}
}

// Clear empties the cart and resets the total to zero.
func (c *Cart) Clear() {
	c.items = nil
	c.total = 0
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the current running total.
func (c *Cart) Total() float64 {
	return c.total
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Quantity returns the quantity of the given product, or zero if absent.
func (c *Cart) Quantity(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// recompute re-derives the total as Σ(price × quantity) over all lines.
// Always from scratch, never patched incrementally.
func (c *Cart) recompute() {
	var total float64
	for i := range c.items {
		total += c.items[i].Price * float64(c.items[i].Quantity)
	}
	c.total = total
}
