// Package boundary exposes the toodle record types to foreign callers as
// opaque handles with explicit ownership transfer.
//
// Handles come in three kinds, each backed by its own registry:
//
//   - item handles (NewItem / DestroyItem)
//   - label-sequence handles (ItemLabels / DestroyLabels)
//   - label handles (LabelAt / DestroyLabel)
//
// # Ownership
//
// Every handle-producing call transfers ownership of one fresh allocation to
// the caller, who must eventually release it with the matching destroy call,
// exactly once. There is no reference counting and no automatic cleanup.
// Destroying the zero handle, or a handle that was already destroyed, is a
// safe no-op.
//
// Accessor and mutator calls borrow their handle: they never take ownership
// and never invalidate it.
//
// # Fault model
//
// The registries track liveness, so a stale or foreign handle is a
// detectable fault: operations on one return ErrInvalidHandle instead of
// reaching freed memory. An out-of-range label index returns
// ErrIndexOutOfRange rather than adjacent data. Absence of a date is not an
// error; it is reported through an explicit validity flag so that a zero
// timestamp stays a valid value.
//
// # Concurrency
//
// Distinct handles may be used from distinct goroutines freely. Sharing one
// handle across goroutines requires external serialization; the registries
// are locked, the records behind them are not.
package boundary
