package toodle

import "github.com/google/uuid"

// ListManager owns a collection of Items and the catalog of known labels.
// It assigns each item its UUID at creation time and preserves insertion
// order for both items and attached labels.
//
// A ListManager is not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
type ListManager struct {
	items  []*Item
	labels []Label
}

// NewListManager returns an empty list.
func NewListManager() *ListManager {
	return &ListManager{}
}

// CreateItem allocates a fresh Item, assigns it a UUID and appends it to the
// list. The returned pointer stays valid until the item is removed.
func (m *ListManager) CreateItem() *Item {
	it := NewItem()
	it.UUID = uuid.NewString()
	m.items = append(m.items, it)
	return it
}

// Items returns the managed items in insertion order. The slice is a fresh
// copy; the items themselves are shared.
func (m *ListManager) Items() []*Item {
	out := make([]*Item, len(m.items))
	copy(out, m.items)
	return out
}

// Len reports the number of managed items.
func (m *ListManager) Len() int {
	return len(m.items)
}

// Item returns the item with the given uuid, or nil if no such item is
// managed by this list.
func (m *ListManager) Item(uuid string) *Item {
	for _, it := range m.items {
		if it.UUID == uuid {
			return it
		}
	}
	return nil
}

// RemoveItem removes the item with the given uuid and reports whether an
// item was removed.
func (m *ListManager) RemoveItem(uuid string) bool {
	for i, it := range m.items {
		if it.UUID == uuid {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// DefineLabel adds a label to the catalog and returns it. Defining the same
// name twice yields two catalog entries; the catalog is a convenience, not a
// uniqueness authority.
func (m *ListManager) DefineLabel(name, color string) Label {
	l := Label{Name: name, Color: color}
	m.labels = append(m.labels, l)
	return l
}

// Labels returns a copy of the label catalog in definition order.
func (m *ListManager) Labels() []Label {
	out := make([]Label, len(m.labels))
	copy(out, m.labels)
	return out
}

// AttachLabel appends a copy of l to the item's label sequence. Duplicates
// are permitted and order is insertion order.
func (m *ListManager) AttachLabel(it *Item, l Label) {
	it.Labels = append(it.Labels, l.Clone())
}
