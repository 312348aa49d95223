// Package main exports the toodle item API as a C shared library.
// Build with: go build -buildmode=c-shared -o libtoodle.so ./c
//
// Every function here is a thin shim over package boundary, which owns the
// handle registries and the record logic. Handles are plain integers; the
// zero handle is "no handle". Strings returned to C are freshly allocated
// and must be released with toodle_string_free.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"github.com/toodle-app/toodle/boundary"
)

// -----------------------------------------------------------------------------
// Item Lifecycle
// -----------------------------------------------------------------------------

//export item_new
func item_new() C.size_t {
	return C.size_t(boundary.NewItem())
}

//export item_destroy
func item_destroy(item C.size_t) {
	boundary.DestroyItem(boundary.Handle(item))
}

// -----------------------------------------------------------------------------
// Name
// -----------------------------------------------------------------------------

//export item_get_name
func item_get_name(item C.size_t) *C.char {
	name, err := boundary.ItemName(boundary.Handle(item))
	if err != nil {
		return C.CString("")
	}
	return C.CString(name)
}

//export item_set_name
func item_set_name(item C.size_t, name *C.char) {
	// goString degrades NULL and malformed input to "", matching the
	// empty-string fallback on the output side.
	_ = boundary.SetItemName(boundary.Handle(item), goString(name))
}

// -----------------------------------------------------------------------------
// Dates
// -----------------------------------------------------------------------------

// Optional dates use a two-part encoding: the return value says whether the
// date is set, *out carries the seconds when it is. Zero stays a valid
// timestamp.

//export item_get_due_date
func item_get_due_date(item C.size_t, out *C.int64_t) C.int {
	sec, ok, err := boundary.ItemDueDate(boundary.Handle(item))
	if err != nil || !ok {
		return 0
	}
	if out != nil {
		*out = C.int64_t(sec)
	}
	return 1
}

//export item_set_due_date
func item_set_due_date(item C.size_t, dueDate *C.int64_t) {
	h := boundary.Handle(item)
	if dueDate == nil {
		_ = boundary.ClearItemDueDate(h)
		return
	}
	_ = boundary.SetItemDueDate(h, int64(*dueDate))
}

//export item_get_completion_date
func item_get_completion_date(item C.size_t, out *C.int64_t) C.int {
	sec, ok, err := boundary.ItemCompletionDate(boundary.Handle(item))
	if err != nil || !ok {
		return 0
	}
	if out != nil {
		*out = C.int64_t(sec)
	}
	return 1
}

//export item_set_completion_date
func item_set_completion_date(item C.size_t, completionDate *C.int64_t) {
	h := boundary.Handle(item)
	if completionDate == nil {
		_ = boundary.ClearItemCompletionDate(h)
		return
	}
	_ = boundary.SetItemCompletionDate(h, int64(*completionDate))
}

// -----------------------------------------------------------------------------
// Main (required for c-shared build)
// -----------------------------------------------------------------------------

func main() {}
