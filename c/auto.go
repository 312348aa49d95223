// auto.go carries the automatic-lifetime entry points (a_item_*).
//
// These serve host runtimes that tie the final release to their own object
// lifetime (a Swift deinit, a Kotlin Cleaner): the handle is a runtime/cgo
// handle the host stores once and releases exactly once from its destructor.
// The record logic is the same root-package Item core exports.go ultimately
// drives; only the ownership convention at the boundary differs. The host
// runtime guarantees it never uses a handle after releasing it, so this
// family performs no liveness tracking of its own.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"

	"github.com/toodle-app/toodle"
)

func autoItem(h C.size_t) *toodle.Item {
	if h == 0 {
		return nil
	}
	it, _ := cgo.Handle(h).Value().(*toodle.Item)
	return it
}

//export a_item_new
func a_item_new() C.size_t {
	return C.size_t(cgo.NewHandle(toodle.NewItem()))
}

//export a_item_destroy
func a_item_destroy(item C.size_t) {
	if item == 0 {
		return
	}
	cgo.Handle(item).Delete()
}

//export a_item_set_name
func a_item_set_name(item C.size_t, name *C.char) {
	it := autoItem(item)
	if it == nil {
		return
	}
	it.Name = goString(name)
}

//export a_item_set_due_date
func a_item_set_due_date(item C.size_t, dueDate *C.int64_t) {
	it := autoItem(item)
	if it == nil {
		return
	}
	if dueDate == nil {
		it.ClearDueDate()
		return
	}
	it.SetDueDate(int64(*dueDate))
}
