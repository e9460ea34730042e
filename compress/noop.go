package compress

// NoOpCompressor stores payloads without compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, without copying.
//
// The returned slice shares memory with data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, without copying, after checking it against limit.
func (c NoOpCompressor) Decompress(data []byte, limit int) ([]byte, error) {
	if err := checkDecodedSize(len(data), limit); err != nil {
		return nil, err
	}

	return data, nil
}
