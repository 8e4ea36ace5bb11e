package collision

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/curvefit/internal/hash"
)

// ErrDuplicateName indicates that two inputs map to the same report name.
var ErrDuplicateName = errors.New("duplicate report name")

// DuplicateNameError names the two inputs that share a report name.
type DuplicateNameError struct {
	Name   string
	First  string
	Second string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("inputs %s and %s would both write report %q", e.First, e.Second, e.Name)
}

// Unwrap returns ErrDuplicateName.
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

type entry struct {
	name  string
	input string
}

// Tracker tracks the inputs of a batch: their report names, which must be unique,
// and their dataset fingerprints, which reveal inputs with identical content.
//
// Names are indexed by their xxHash64 ID. Two different names with the same ID are
// a hash collision, not a duplicate; they are kept in a fallback map and
// HasCollision reports it.
//
// A Tracker is safe for concurrent use.
type Tracker struct {
	mu           sync.Mutex
	names        map[uint64]entry  // hash ID → first name and its input
	overflow     map[string]string // colliding names → input
	fingerprints map[uint64]string // dataset fingerprint → first input
	count        int
	hasCollision bool
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:        make(map[uint64]entry),
		overflow:     make(map[string]string),
		fingerprints: make(map[uint64]string),
	}
}

// TrackName registers the report name of input.
// It returns a *DuplicateNameError if another input already uses name.
func (t *Tracker) TrackName(name, input string) error {
	if name == "" {
		return fmt.Errorf("empty report name for input %q", input)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := hash.ID(name)
	if existing, exists := t.names[id]; exists {
		if existing.name == name {
			return &DuplicateNameError{Name: name, First: existing.input, Second: input}
		}

		// Different name, same hash.
		t.hasCollision = true
		if first, dup := t.overflow[name]; dup {
			return &DuplicateNameError{Name: name, First: first, Second: input}
		}
		t.overflow[name] = input
		t.count++

		return nil
	}

	t.names[id] = entry{name: name, input: input}
	t.count++

	return nil
}

// TrackFingerprint records the dataset fingerprint of input. If an earlier input
// had the same fingerprint it returns that input and true.
func (t *Tracker) TrackFingerprint(fingerprint uint64, input string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if first, exists := t.fingerprints[fingerprint]; exists {
		return first, true
	}
	t.fingerprints[fingerprint] = input

	return "", false
}

// HasCollision returns true if two different names shared a hash ID.
func (t *Tracker) HasCollision() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.hasCollision
}

// Count returns the number of registered names.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.count
}
