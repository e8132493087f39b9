package types

import "sync"

var (
	defaultOnce     sync.Once
	defaultInterner *Interner
)

// Default returns the process-wide interner singleton, lazily constructed
// on first use. It exists purely as ergonomics for the common
// single-compilation driver; anything that wants isolated or concurrent
// compilations should call NewInterner directly instead (spec.md §5, §9).
func Default() *Interner {
	defaultOnce.Do(func() {
		defaultInterner = NewInterner()
	})
	return defaultInterner
}
