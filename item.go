package toodle

import "time"

// Item is a single to-do entry.
//
// UUID is reserved: the ListManager assigns it when the item joins a list,
// and the C boundary deliberately exposes no accessor for it.
//
// Both dates carry whole-second resolution; a nil pointer means the date is
// not set. Zero is an ordinary timestamp and never doubles as "unset".
type Item struct {
	UUID           string
	Name           string
	DueDate        *time.Time
	CompletionDate *time.Time
	Labels         []Label
}

// NewItem returns an Item with every field at its default: empty UUID and
// name, no due or completion date, no labels. It cannot fail and there is no
// partially-initialized state.
func NewItem() *Item {
	return &Item{}
}

// SetDueDate sets the due date to sec seconds since the Unix epoch. The
// sub-second component is always zero. Any integer is accepted, including
// zero and negative values.
func (it *Item) SetDueDate(sec int64) {
	t := time.Unix(sec, 0).UTC()
	it.DueDate = &t
}

// ClearDueDate removes the due date. The completion date is untouched.
func (it *Item) ClearDueDate() {
	it.DueDate = nil
}

// DueDateSeconds reports the due date in seconds since the Unix epoch.
// ok is false when no due date is set; sec is meaningful only when ok is
// true.
func (it *Item) DueDateSeconds() (sec int64, ok bool) {
	if it.DueDate == nil {
		return 0, false
	}
	return it.DueDate.Unix(), true
}

// SetCompletionDate sets the completion date to sec seconds since the Unix
// epoch, sub-second component fixed at zero.
func (it *Item) SetCompletionDate(sec int64) {
	t := time.Unix(sec, 0).UTC()
	it.CompletionDate = &t
}

// ClearCompletionDate removes the completion date. The due date is
// untouched.
func (it *Item) ClearCompletionDate() {
	it.CompletionDate = nil
}

// CompletionDateSeconds reports the completion date in seconds since the
// Unix epoch. ok is false when no completion date is set.
func (it *Item) CompletionDateSeconds() (sec int64, ok bool) {
	if it.CompletionDate == nil {
		return 0, false
	}
	return it.CompletionDate.Unix(), true
}

// Completed reports whether the item has a completion date.
func (it *Item) Completed() bool {
	return it.CompletionDate != nil
}

// LabelsCopy returns a copy of the item's label sequence in insertion order.
// Mutating the returned slice never affects the item.
func (it *Item) LabelsCopy() []Label {
	out := make([]Label, len(it.Labels))
	copy(out, it.Labels)
	return out
}

// Clone returns a deep copy of the item. The copy shares no memory with the
// original: dates are re-allocated and the label sequence is copied.
func (it *Item) Clone() *Item {
	out := &Item{
		UUID:   it.UUID,
		Name:   it.Name,
		Labels: it.LabelsCopy(),
	}
	if it.DueDate != nil {
		d := *it.DueDate
		out.DueDate = &d
	}
	if it.CompletionDate != nil {
		d := *it.CompletionDate
		out.CompletionDate = &d
	}
	return out
}
