// strings.go is the string bridge between C and Go for the toodle C API.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"
)

// goString decodes a C string into a Go string. NULL and malformed UTF-8
// both degrade to the empty string; decode failure is never a fault.
func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	g := C.GoString(s)
	if !utf8.ValidString(g) {
		return ""
	}
	return g
}

//export toodle_string_free
func toodle_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}
