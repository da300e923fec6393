package types

type NavigationItem struct {
	Name     string
	Href     string
	Children []NavigationItem
}

// Flatten returns the item followed by all of its descendants.
func (n NavigationItem) Flatten() []NavigationItem {
	out := []NavigationItem{n}
	for _, c := range n.Children {
		out = append(out, c.Flatten()...)
	}
	return out
}
