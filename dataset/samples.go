package dataset

import (
	"slices"

	"github.com/arloliu/curvefit/internal/hash"
	"github.com/arloliu/curvefit/regression"
)

// Samples is an ordered set of (x, y) pairs stored as two parallel columns.
type Samples struct {
	X []float64
	Y []float64
}

// Len returns the number of pairs, or the length of the shorter column if they differ.
func (s Samples) Len() int {
	return min(len(s.X), len(s.Y))
}

// Validate checks that both columns are non-empty and of equal length.
// The errors are those of the regression package.
func (s Samples) Validate() error {
	if len(s.X) != len(s.Y) {
		return &regression.DataLengthMismatchError{XLen: len(s.X), YLen: len(s.Y)}
	}
	if len(s.X) == 0 {
		return regression.ErrEmptyDataset
	}

	return nil
}

// Clone returns a deep copy.
func (s Samples) Clone() Samples {
	return Samples{X: slices.Clone(s.X), Y: slices.Clone(s.Y)}
}

// Fingerprint returns an order-sensitive xxHash64 of the sample values.
// Two sets have the same fingerprint when their IEEE-754 bits are identical.
func (s Samples) Fingerprint() uint64 {
	return hash.Float64s(s.X, s.Y)
}

// RangeX returns the smallest and largest x. It returns (0, 0) for an empty set.
func (s Samples) RangeX() (float64, float64) {
	if len(s.X) == 0 {
		return 0, 0
	}

	return slices.Min(s.X), slices.Max(s.X)
}

func (s *Samples) append(x, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}
