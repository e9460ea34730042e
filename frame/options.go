package frame

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/binstd/errs"
	"github.com/arloliu/binstd/format"
	"github.com/arloliu/binstd/internal/options"
	"github.com/arloliu/binstd/wire"
)

// Settings holds the options of a Marshal or Unmarshal call.
type Settings struct {
	// Header carries the compression and checksum used by Marshal.
	// Unmarshal always follows the header found in the frame.
	Header Header

	// WireConfig bounds dynamic-length reads while decoding the payload.
	WireConfig wire.Config

	// MaxDecodedSize bounds the encoded payload before compression on Marshal
	// and after decompression on Unmarshal.
	MaxDecodedSize int

	logger *zap.Logger
}

// Option configures a Marshal or Unmarshal call.
type Option = options.Option[*Settings]

// NewSettings returns the defaults with opts applied.
//
// Defaults: no compression, XXH64 checksum, wire.DefaultConfig,
// DefaultMaxDecodedSize and a no-op logger.
func NewSettings(opts ...Option) (*Settings, error) {
	s := &Settings{
		Header:         NewHeader(),
		WireConfig:     wire.DefaultConfig,
		MaxDecodedSize: DefaultMaxDecodedSize,
		logger:         zap.NewNop(),
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// WithCompression sets the payload compression.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(s *Settings) error {
		if _, ok := validCompressions[ct]; !ok {
			return fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedCompression, uint8(ct))
		}
		s.Header.Compression = ct

		return nil
	})
}

// WithChecksum sets the payload checksum.
func WithChecksum(ct format.ChecksumType) Option {
	return options.New(func(s *Settings) error {
		if _, ok := validChecksums[ct]; !ok {
			return fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedChecksum, uint8(ct))
		}
		s.Header.Checksum = ct

		return nil
	})
}

// WithConfig sets the decode ceilings applied to the payload.
func WithConfig(cfg wire.Config) Option {
	return options.New(func(s *Settings) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.WireConfig = cfg

		return nil
	})
}

// WithMaxDecodedSize bounds the uncompressed payload size.
func WithMaxDecodedSize(n int) Option {
	return options.New(func(s *Settings) error {
		if err := errs.CheckRange("max decoded size", int64(n), wire.MaxLength); err != nil {
			return err
		}
		s.MaxDecodedSize = n

		return nil
	})
}

// WithLogger enables debug logging of frame sizes. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(s *Settings) {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
	})
}
