package pool

// DefaultChunkSize is the slab capacity used when New is given a
// non-positive size.
const DefaultChunkSize = 256

// Arena allocates values of T from chunked slabs it owns in bulk.
// Pointers returned by Allocate stay valid until Release; chunks are
// never moved or resized in place.
type Arena[T any] struct {
	chunks    [][]T
	chunkSize int
	count     int
	released  bool
}

// New creates an empty arena with the given slab capacity.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Allocate returns a pointer to a zeroed slot. The slot belongs to the
// arena and must not outlive it. Allocating from a released arena is a
// caller bug and panics.
func (a *Arena[T]) Allocate() *T {
	if a.released {
		panic("pool: allocate from released arena")
	}
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == cap(a.chunks[n-1]) {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
		n++
	}
	chunk := &a.chunks[n-1]
	var zero T
	*chunk = append(*chunk, zero)
	a.count++
	return &(*chunk)[len(*chunk)-1]
}

// Len reports how many slots have been handed out.
func (a *Arena[T]) Len() int { return a.count }

// Chunks reports how many slabs back the arena.
func (a *Arena[T]) Chunks() int { return len(a.chunks) }

// Release drops every slab at once. All pointers handed out by Allocate
// become invalid. Release is idempotent; Allocate after Release panics.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.count = 0
	a.released = true
}
