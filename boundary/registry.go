// registry.go holds the handle registries. A registry maps live handles to
// their backing values; destroy removes the entry, so stale handles miss the
// map instead of dereferencing freed memory.
package boundary

import (
	"sync"
	"sync/atomic"

	"github.com/toodle-app/toodle"
	"github.com/toodle-app/toodle/logging"
)

// Handle identifies one boundary-owned allocation. Handles are opaque to the
// caller. The zero Handle is never issued and always means "no handle".
type Handle uintptr

// handleSeq issues ids for every registry from one shared sequence. No two
// live handles ever carry the same numeric value regardless of kind, so a
// handle presented to the wrong registry misses instead of aliasing another
// live object.
var handleSeq atomic.Uintptr

func nextHandle() Handle {
	return Handle(handleSeq.Add(1))
}

type registry[T any] struct {
	mu     sync.Mutex
	values map[Handle]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{values: make(map[Handle]T)}
}

func (r *registry[T]) put(v T) Handle {
	h := nextHandle()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[h] = v
	return h
}

func (r *registry[T]) get(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[h]
	return v, ok
}

// drop removes h. Dropping the zero handle or an unknown handle is a no-op.
func (r *registry[T]) drop(h Handle) {
	if h == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, h)
}

func (r *registry[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

var (
	items      = newRegistry[*toodle.Item]()
	labelLists = newRegistry[[]toodle.Label]()
	labels     = newRegistry[toodle.Label]()

	log = logging.Discard()
)

// SetLogger installs the diagnostic sink for boundary tracing. Passing nil
// restores the no-op sink. Tracing never affects any operation's result.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	log = l
}

// Live reports the number of live handles per registry. Intended for leak
// diagnostics: after every create has met its matching destroy, all three
// counts are back to their previous values.
func Live() (itemCount, labelListCount, labelCount int) {
	return items.count(), labelLists.count(), labels.count()
}
