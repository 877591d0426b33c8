package pulse

import "log/slog"

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}

// ReleaseStack tracks resources in the order they were acquired
// and releases them in reverse order. Every resource is released
// at most once.
type ReleaseStack struct {
	entries []stackEntry
}

type stackEntry struct {
	name     string
	resource Releaser
}

// Push records a newly acquired resource.
func (s *ReleaseStack) Push(name string, resource Releaser) {
	s.entries = append(s.entries, stackEntry{name: name, resource: resource})
}

// Len returns the number of resources not yet released.
func (s *ReleaseStack) Len() int {
	return len(s.entries)
}

func (s *ReleaseStack) Release() {
	for len(s.entries) > 0 {
		last := len(s.entries) - 1
		entry := s.entries[last]

		// pop before releasing, a panicking Release must not
		// lead to a second release of the same resource
		s.entries[last] = stackEntry{}
		s.entries = s.entries[:last]

		slog.Debug("Release resource", slog.String("name", entry.name))
		entry.resource.Release()
	}
}
