// Package toodle implements the native side of a cross-platform to-do list:
// the Item record type, the Label tag type, and the ListManager that owns a
// collection of items.
//
// # Overview
//
// toodle is designed to sit underneath mobile UI code that does not
// understand Go memory. The packages split along that boundary:
//
//   - The root package holds the plain record types. Nothing here knows
//     about handles or foreign callers.
//   - Package boundary exposes every record operation in terms of opaque
//     handles with explicit create/destroy ownership transfer.
//   - The c directory builds the boundary as a C shared library
//     (go build -buildmode=c-shared) for Swift, Kotlin and friends.
//
// # Quick Start
//
//	import "github.com/toodle-app/toodle"
//
//	func main() {
//	    mgr := toodle.NewListManager()
//
//	    item := mgr.CreateItem()
//	    item.Name = "Buy milk"
//	    item.SetDueDate(1700000000)
//
//	    urgent := mgr.DefineLabel("urgent", "#FF5F5F")
//	    mgr.AttachLabel(item, urgent)
//	}
//
// # Ownership
//
// Within Go, items are ordinary garbage-collected values. Ownership only
// becomes explicit at the boundary package, where every handle-producing
// call obligates the caller to a matching destroy call. See that package's
// documentation for the full contract.
package toodle
