package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CartStorageKey is the key prefix under which a visitor's cart is persisted.
const CartStorageKey = "kanoha_cart"

var ErrMalformedCart = errors.New("malformed cart data")

// A CartItem is one line of the inquiry cart.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Img      string `json:"img"`
	Quantity int    `json:"quantity"`
}

// A Cart is the inquiry list of a single visitor.
//
// Item ids are unique and every quantity is at least 1.
type Cart struct {
	Items []CartItem
}

// ItemCount returns the sum of all line quantities.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Find(id string) (CartItem, bool) {
	if i := c.index(id); i != -1 {
		return c.Items[i], true
	}
	return CartItem{}, false
}

// Add puts p into the cart with quantity 1 or increments the existing line.
// It reports whether an existing line was incremented.
func (c *Cart) Add(p Product) (increased bool) {
	if i := c.index(p.ID); i != -1 {
		c.Items[i].Quantity++
		return true
	}
	c.Items = append(c.Items, CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Img:      p.Img,
		Quantity: 1,
	})
	return false
}

// Remove deletes the line with id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i == -1 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// UpdateQuantity sets the quantity of the line with id.
// Quantities below 1 are ignored. It reports whether the cart changed.
func (c *Cart) UpdateQuantity(id string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	i := c.index(id)
	if i == -1 || c.Items[i].Quantity == quantity {
		return false
	}
	c.Items[i].Quantity = quantity
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Release takes the quantities of submitted lines out of the cart. Lines
// whose quantity drops below 1 are removed; anything added since the
// snapshot stays.
func (c *Cart) Release(submitted []CartItem) {
	for _, it := range submitted {
		i := c.index(it.ID)
		if i == -1 {
			continue
		}
		if c.Items[i].Quantity > it.Quantity {
			c.Items[i].Quantity -= it.Quantity
			continue
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Snapshot returns a copy of the cart lines.
func (c Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}

func (c Cart) index(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Encode serializes the cart as a JSON array of lines.
func (c Cart) Encode() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}
	return json.Marshal(items)
}

// DecodeCart parses data produced by [Cart.Encode].
func DecodeCart(data []byte) (Cart, error) {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return Cart{}, fmt.Errorf("%w: %w", ErrMalformedCart, err)
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 {
			return Cart{}, fmt.Errorf("%w: invalid line %+v", ErrMalformedCart, item)
		}
		if _, dup := seen[item.ID]; dup {
			return Cart{}, fmt.Errorf("%w: duplicate id %q", ErrMalformedCart, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	if len(items) == 0 {
		items = nil
	}
	return Cart{Items: items}, nil
}

var ErrEmptyCart = errors.New("cart is empty")
