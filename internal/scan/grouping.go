package scan

// Grouping maps categories to entry names. Categories iterate in the order
// they were first added; names within a category keep insertion order.
type Grouping struct {
	order   []Category
	members map[Category][]string
}

// NewGrouping returns an empty Grouping.
func NewGrouping() *Grouping {
	return &Grouping{members: make(map[Category][]string)}
}

// Add appends name to c, creating the category on first use.
func (g *Grouping) Add(c Category, name string) {
	if g.members == nil {
		g.members = make(map[Category][]string)
	}
	if _, ok := g.members[c]; !ok {
		g.order = append(g.order, c)
	}
	g.members[c] = append(g.members[c], name)
}

// Categories returns the categories in first-seen order.
func (g *Grouping) Categories() []Category {
	out := make([]Category, len(g.order))
	copy(out, g.order)
	return out
}

// Members returns the names in c, in insertion order.
func (g *Grouping) Members(c Category) []string {
	m := g.members[c]
	out := make([]string, len(m))
	copy(out, m)
	return out
}

// Len returns the number of categories.
func (g *Grouping) Len() int { return len(g.order) }

// Size returns the total number of names across all categories.
func (g *Grouping) Size() int {
	n := 0
	for _, c := range g.order {
		n += len(g.members[c])
	}
	return n
}
