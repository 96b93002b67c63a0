package domain

// CartLine is one product in the cart with a snapshot taken when it was first added.
type CartLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Qty   int     `json:"qty"`
}

// Cart is an insertion-ordered set of lines, at most one per product id.
// Quantities never drop below 1; removal is the only way out of the cart.
type Cart struct {
	Lines []CartLine `json:"items"`
}

func (c *Cart) find(id string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return i
		}
	}
	return -1
}

// Add increments the line for p or appends a new snapshot line with quantity 1.
func (c *Cart) Add(p Product) {
	if i := c.find(p.ID); i >= 0 {
		c.Lines[i].Qty++
		return
	}
	c.Lines = append(c.Lines, CartLine{
		ID:    p.ID,
		Name:  p.Name,
		Brand: p.Brand,
		Price: p.Price,
		Image: ImageForProduct(p),
		Qty:   1,
	})
}

// SetQuantity sets the quantity of id, clamped to at least 1.
// It reports false when the cart holds no line for id.
func (c *Cart) SetQuantity(id string, qty int) bool {
	i := c.find(id)
	if i < 0 {
		return false
	}
	c.Lines[i].Qty = max(1, qty)
	return true
}

// Remove deletes the line for id. It reports false when there was none.
func (c *Cart) Remove(id string) bool {
	i := c.find(id)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// Total is the undiscounted value of the cart. It always equals CalcTotals(...).Subtotal.
func (c *Cart) Total() float64 {
	return CalcTotals(c.Lines, "").Subtotal
}

// Normalize repairs lines loaded from storage: duplicate ids are merged,
// lines without an id are dropped and quantities are clamped to at least 1.
func (c *Cart) Normalize() {
	lines := make([]CartLine, 0, len(c.Lines))
	index := make(map[string]int, len(c.Lines))
	for _, l := range c.Lines {
		if l.ID == "" {
			continue
		}
		l.Qty = max(1, l.Qty)
		if i, ok := index[l.ID]; ok {
			lines[i].Qty += l.Qty
			continue
		}
		index[l.ID] = len(lines)
		lines = append(lines, l)
	}
	c.Lines = lines
}

// Snapshot returns a copy of the lines safe to hand to callers.
func (c *Cart) Snapshot() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}
