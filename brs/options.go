package brs

import "github.com/bricksave/brs/internal/options"

// readerConfig holds the tunables a ReaderOption can adjust.
type readerConfig struct {
	maxSectionSize int64
}

// ReaderOption configures Open.
type ReaderOption = options.Option[*readerConfig]

// WithMaxSectionSize overrides the decompression-bomb ceiling applied to
// every compressed section in the file (see section.DefaultMaxSectionSize).
// A non-positive value restores the default.
func WithMaxSectionSize(n int64) ReaderOption {
	return options.NoError[*readerConfig](func(c *readerConfig) {
		c.maxSectionSize = n
	})
}

func newReaderConfig(opts ...ReaderOption) (*readerConfig, error) {
	cfg := &readerConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
