package boundary

import "github.com/toodle-app/toodle"

// NewItem allocates a fresh Item with all fields at their defaults and
// transfers ownership to the caller as a handle. Release it with
// DestroyItem.
func NewItem() Handle {
	h := items.put(toodle.NewItem())
	log.Debug("item created", "handle", h)
	return h
}

// DestroyItem releases the item behind h. Passing the zero handle or an
// already-destroyed handle is a safe no-op.
func DestroyItem(h Handle) {
	items.drop(h)
	log.Debug("item destroyed", "handle", h)
}

// ItemName returns a copy of the item's name; the empty string if the name
// was never set.
func ItemName(h Handle) (string, error) {
	it, ok := items.get(h)
	if !ok {
		log.Error("item name read on dead handle", "handle", h)
		return "", ErrInvalidHandle
	}
	return it.Name, nil
}

// SetItemName replaces the item's name.
func SetItemName(h Handle, name string) error {
	it, ok := items.get(h)
	if !ok {
		log.Error("item name write on dead handle", "handle", h)
		return ErrInvalidHandle
	}
	it.Name = name
	log.Debug("item name set", "handle", h, "name", name)
	return nil
}

// ItemDueDate reports the due date in seconds since the Unix epoch. ok is
// false when no due date is set; sec carries no meaning then. Zero is a
// valid timestamp, never an absence marker.
func ItemDueDate(h Handle) (sec int64, ok bool, err error) {
	it, found := items.get(h)
	if !found {
		return 0, false, ErrInvalidHandle
	}
	sec, ok = it.DueDateSeconds()
	log.Debug("item due date read", "handle", h, "set", ok)
	return sec, ok, nil
}

// SetItemDueDate sets the due date to sec, sub-second component fixed at
// zero. The completion date is never affected.
func SetItemDueDate(h Handle, sec int64) error {
	it, ok := items.get(h)
	if !ok {
		return ErrInvalidHandle
	}
	it.SetDueDate(sec)
	log.Debug("item due date set", "handle", h, "sec", sec)
	return nil
}

// ClearItemDueDate removes the due date.
func ClearItemDueDate(h Handle) error {
	it, ok := items.get(h)
	if !ok {
		return ErrInvalidHandle
	}
	it.ClearDueDate()
	log.Debug("item due date cleared", "handle", h)
	return nil
}

// ItemCompletionDate reports the completion date with the same contract as
// ItemDueDate.
func ItemCompletionDate(h Handle) (sec int64, ok bool, err error) {
	it, found := items.get(h)
	if !found {
		return 0, false, ErrInvalidHandle
	}
	sec, ok = it.CompletionDateSeconds()
	log.Debug("item completion date read", "handle", h, "set", ok)
	return sec, ok, nil
}

// SetItemCompletionDate sets the completion date to sec, sub-second
// component fixed at zero. The due date is never affected.
func SetItemCompletionDate(h Handle, sec int64) error {
	it, ok := items.get(h)
	if !ok {
		return ErrInvalidHandle
	}
	it.SetCompletionDate(sec)
	log.Debug("item completion date set", "handle", h, "sec", sec)
	return nil
}

// ClearItemCompletionDate removes the completion date.
func ClearItemCompletionDate(h Handle) error {
	it, ok := items.get(h)
	if !ok {
		return ErrInvalidHandle
	}
	it.ClearCompletionDate()
	log.Debug("item completion date cleared", "handle", h)
	return nil
}
