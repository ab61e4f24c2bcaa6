package webstate

import "github.com/samber/lo"

// CartItem is one line in the visitor's cart. Price is a snapshot of the
// catalog price at the moment the item was added; the server re-prices at
// checkout anyway.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds qty of a product, merging with an existing line
func (c *Cart) AddItem(item CartItem, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
func (c *Cart) UpdateQuantity(productID uint, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) RemoveItem(productID uint) {
	c.Items = lo.Filter(c.Items, func(item CartItem, _ int) bool {
		return item.ProductID != productID
	})
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the sum of price*quantity over all lines
func (c *Cart) Total() float64 {
	return lo.SumBy(c.Items, func(item CartItem) float64 {
		return item.Price * float64(item.Quantity)
	})
}

// ItemCount is the total number of units in the cart
func (c *Cart) ItemCount() int {
	return lo.SumBy(c.Items, func(item CartItem) int {
		return item.Quantity
	})
}
