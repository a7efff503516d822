package repository

import "fmt"

// The String methods below are display labels consumed by existing UIs and
// logs; their exact layout, including the literal " м" suffix on box
// dimensions, must stay stable. Optional fields render as empty strings.

func (c *Client) String() string {
	return fmt.Sprintf("%s: %s, %s", c.UserName, strOrEmpty(c.Address), strOrEmpty(c.PhoneNumber))
}

func (s *Storage) String() string {
	return fmt.Sprintf("%d %s", s.Number, s.Address)
}

func (b *Box) String() string {
	return fmt.Sprintf("%s(%gx%gx%g м)", b.Name, b.Length, b.Width, b.Height)
}

// OrderInfo is an order together with its loaded relations, assembled for
// display. Storage and Box are nil for orders with no box assigned.
type OrderInfo struct {
	Order
	Client  *Client
	Storage *Storage
	Box     *Box
}

func (o *OrderInfo) String() string {
	var client, storage, box string
	if o.Client != nil {
		client = o.Client.String()
	}
	if o.Storage != nil {
		storage = o.Storage.String()
	}
	if o.Box != nil {
		box = o.Box.String()
	}
	return fmt.Sprintf("#%d %s %s %s", o.ID, client, storage, box)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
