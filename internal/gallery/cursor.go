package gallery

// cursor walks an ordered list of string segments. Reading past the end
// yields "" so optional trailing segments decode as absent.
type cursor struct {
	items []string
	pos   int
}

func newCursor(items []string) *cursor {
	return &cursor{items: items}
}

// peek returns the current item without consuming it.
func (c *cursor) peek() string {
	if c.pos >= len(c.items) {
		return ""
	}
	return c.items[c.pos]
}

// next consumes and returns the current item.
func (c *cursor) next() string {
	item := c.peek()
	if c.pos < len(c.items) {
		c.pos++
	}
	return item
}

// remove drops the first unconsumed item equal to value.
func (c *cursor) remove(value string) bool {
	for i := c.pos; i < len(c.items); i++ {
		if c.items[i] == value {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

