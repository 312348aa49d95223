// api_label.go provides label-sequence and label operations for the C API.
//
// item_get_labels hands the caller an independently owned snapshot of the
// item's labels; item_label_at clones one element out of such a snapshot.
// Each returned handle needs its own matching destroy call.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"github.com/toodle-app/toodle/boundary"
)

//export item_get_labels
func item_get_labels(item C.size_t) C.size_t {
	list, err := boundary.ItemLabels(boundary.Handle(item))
	if err != nil {
		return 0
	}
	return C.size_t(list)
}

//export item_labels_count
func item_labels_count(labelList C.size_t) C.int {
	n, err := boundary.LabelsCount(boundary.Handle(labelList))
	if err != nil {
		return -1
	}
	return C.int(n)
}

//export item_label_at
func item_label_at(labelList C.size_t, index C.size_t) C.size_t {
	// Out-of-range indexes come back as the zero handle, never as
	// adjacent memory.
	label, err := boundary.LabelAt(boundary.Handle(labelList), int(index))
	if err != nil {
		return 0
	}
	return C.size_t(label)
}

//export label_list_destroy
func label_list_destroy(labelList C.size_t) {
	boundary.DestroyLabels(boundary.Handle(labelList))
}

//export label_destroy
func label_destroy(label C.size_t) {
	boundary.DestroyLabel(boundary.Handle(label))
}

//export label_get_name
func label_get_name(label C.size_t) *C.char {
	name, err := boundary.LabelName(boundary.Handle(label))
	if err != nil {
		return C.CString("")
	}
	return C.CString(name)
}

//export label_get_color
func label_get_color(label C.size_t) *C.char {
	color, err := boundary.LabelColor(boundary.Handle(label))
	if err != nil {
		return C.CString("")
	}
	return C.CString(color)
}
