package collision

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/curvefit/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackName(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackName("run1", "data/run1.txt"))
	require.NoError(t, tracker.TrackName("run2", "data/run2.txt.zst"))
	require.Equal(t, 2, tracker.Count())

	err := tracker.TrackName("run1", "other/run1.txt")
	require.ErrorIs(t, err, ErrDuplicateName)

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "data/run1.txt", dup.First)
	require.Equal(t, "other/run1.txt", dup.Second)
	require.Equal(t, 2, tracker.Count())

	require.Error(t, tracker.TrackName("", "x"))
}

func TestTracker_HashCollision(t *testing.T) {
	tracker := NewTracker()

	// Plant an entry under the ID of "beta" with a different name.
	tracker.names[hash.ID("beta")] = entry{name: "alpha", input: "a.txt"}

	require.NoError(t, tracker.TrackName("beta", "b.txt"))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())

	err := tracker.TrackName("beta", "c.txt")
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestTracker_TrackFingerprint(t *testing.T) {
	tracker := NewTracker()

	_, dup := tracker.TrackFingerprint(0xabc, "a.txt")
	require.False(t, dup)

	_, dup = tracker.TrackFingerprint(0xdef, "b.txt")
	require.False(t, dup)

	first, dup := tracker.TrackFingerprint(0xabc, "c.txt")
	require.True(t, dup)
	require.Equal(t, "a.txt", first)
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tracker.TrackName(string(rune('A'+i)), "input")
			tracker.TrackFingerprint(uint64(i%8), "input")
		}()
	}
	wg.Wait()

	require.Equal(t, 64, tracker.Count())
}
