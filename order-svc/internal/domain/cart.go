package domain

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartItem is the menu item copy held by a cart line. Prices are
// snapshotted when the line is added, not joined back to the catalog.
type CartItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
}

type CartLine struct {
	Item     CartItem `json:"item"`
	Quantity int      `json:"quantity"`
}

type CartTotals struct {
	TotalItems int     `json:"total_items"`
	Subtotal   float64 `json:"subtotal"`
}

// Cart keeps at most one line per menu item, in insertion order.
// No line ever carries a quantity below one.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

func NewCart(id string) *Cart {
	return &Cart{ID: id, Lines: []CartLine{}}
}

func (c *Cart) find(menuItemID int) int {
	for i := range c.Lines {
		if c.Lines[i].Item.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}

// Add appends a line for the item, or bumps the quantity of the existing
// line for the same menu item.
func (c *Cart) Add(item CartItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i := c.find(item.MenuItemID); i >= 0 {
		c.Lines[i].Quantity += quantity
		return nil
	}
	c.Lines = append(c.Lines, CartLine{Item: item, Quantity: quantity})
	return nil
}

// UpdateQuantity sets (does not increment) the line quantity. Zero or
// negative quantities remove the line.
func (c *Cart) UpdateQuantity(menuItemID, quantity int) {
	if quantity <= 0 {
		c.Remove(menuItemID)
		return
	}
	if i := c.find(menuItemID); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

func (c *Cart) Remove(menuItemID int) {
	if i := c.find(menuItemID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Totals is derived on every call; nothing is cached on the cart.
func (c *Cart) Totals() CartTotals {
	totals := CartTotals{}
	for _, line := range c.Lines {
		totals.TotalItems += line.Quantity
		totals.Subtotal += line.Item.Price * float64(line.Quantity)
	}
	return totals
}

// Snapshot freezes the cart lines into order items for checkout.
func (c *Cart) Snapshot() []OrderItem {
	items := make([]OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, OrderItem{
			MenuItemID: line.Item.MenuItemID,
			Name:       line.Item.Name,
			Price:      line.Item.Price,
			Quantity:   line.Quantity,
		})
	}
	return items
}
