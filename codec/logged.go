package codec

import (
	"go.uber.org/zap"

	"github.com/arloliu/binstd/wire"
)

// Logged wraps c and logs every encode or decode failure at debug level with
// the codec name and the cursor offset. A nil logger disables logging.
//
// The error is returned unchanged.
func Logged[T any](c Codec[T], name string, logger *zap.Logger) Codec[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("codec", name))

	return Of(
		EncodeFunc[T](func(out *wire.Output, v T) error {
			offset := out.Len()
			err := c.Encode(out, v)
			if err != nil {
				logger.Debug("encode failed",
					zap.Int("offset", offset),
					zap.Int("written", out.Len()-offset),
					zap.Error(err))
			}

			return err
		}),
		DecodeFunc[T](func(in *wire.Input) (T, error) {
			offset := in.BytesRead()
			v, err := c.Decode(in)
			if err != nil {
				logger.Debug("decode failed",
					zap.Int("offset", offset),
					zap.Int("remaining", in.Remaining()),
					zap.Error(err))
			}

			return v, err
		}),
	)
}
