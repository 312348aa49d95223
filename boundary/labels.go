package boundary

// ItemLabels returns a new, independently owned copy of the item's label
// sequence under its own handle. Mutations to the item after this call are
// not reflected in the copy, and vice versa. Release the returned handle
// with DestroyLabels.
func ItemLabels(h Handle) (Handle, error) {
	it, ok := items.get(h)
	if !ok {
		log.Error("labels read on dead item handle", "handle", h)
		return 0, ErrInvalidHandle
	}
	list := labelLists.put(it.LabelsCopy())
	log.Debug("label sequence exported", "item", h, "handle", list)
	return list, nil
}

// DestroyLabels releases a label-sequence handle. Passing the zero handle or
// an already-destroyed handle is a safe no-op.
func DestroyLabels(list Handle) {
	labelLists.drop(list)
	log.Debug("label sequence destroyed", "handle", list)
}

// LabelsCount reports the length of a label-sequence handle.
func LabelsCount(list Handle) (int, error) {
	ls, ok := labelLists.get(list)
	if !ok {
		return 0, ErrInvalidHandle
	}
	return len(ls), nil
}

// LabelAt returns an independently owned copy of the label at index under
// its own handle. index must be in [0, LabelsCount); anything else is
// ErrIndexOutOfRange, never partially-valid data. Release the returned
// handle with DestroyLabel.
func LabelAt(list Handle, index int) (Handle, error) {
	ls, ok := labelLists.get(list)
	if !ok {
		return 0, ErrInvalidHandle
	}
	if index < 0 || index >= len(ls) {
		log.Error("label index out of range", "handle", list, "index", index, "count", len(ls))
		return 0, ErrIndexOutOfRange
	}
	h := labels.put(ls[index].Clone())
	log.Debug("label exported", "sequence", list, "index", index, "handle", h)
	return h, nil
}

// DestroyLabel releases a label handle. Passing the zero handle or an
// already-destroyed handle is a safe no-op.
func DestroyLabel(h Handle) {
	labels.drop(h)
	log.Debug("label destroyed", "handle", h)
}

// LabelName returns a copy of the label's name.
func LabelName(h Handle) (string, error) {
	l, ok := labels.get(h)
	if !ok {
		return "", ErrInvalidHandle
	}
	return l.Name, nil
}

// LabelColor returns a copy of the label's color code.
func LabelColor(h Handle) (string, error) {
	l, ok := labels.get(h)
	if !ok {
		return "", ErrInvalidHandle
	}
	return l.Color, nil
}
