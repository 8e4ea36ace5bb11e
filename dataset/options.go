package dataset

import (
	"fmt"

	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/options"
)

type config struct {
	strict      bool
	maxSamples  int
	compression format.CompressionType
}

// Option configures Parse and Load.
type Option = options.Option[*config]

// WithStrict enables the line-oriented strict parser.
func WithStrict() Option {
	return options.NoError(func(c *config) {
		c.strict = true
	})
}

// WithMaxSamples limits the number of samples; 0 means unlimited.
func WithMaxSamples(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("max samples must not be negative, got %d", n)
		}
		c.maxSamples = n

		return nil
	})
}

// WithCompression forces the codec used by Load instead of detecting it.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = ct
			return nil
		default:
			return fmt.Errorf("invalid dataset compression: %s", ct)
		}
	})
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
