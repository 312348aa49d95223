package toodle

// Label is a tag attached to an Item. Labels are plain values: attaching one
// to an item stores a copy, never a shared reference, so a label can appear
// on any number of items (or several times on the same item).
type Label struct {
	Name  string
	Color string // hex color code, e.g. "#7D56F4"
}

// Clone returns an independent copy of the label.
func (l Label) Clone() Label {
	return l
}
