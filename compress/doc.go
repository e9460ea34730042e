// Package compress provides the block compressors that frames and the
// Compressed codec apply to encoded payloads.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: payload is stored as-is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Every Decompress call takes a limit on the decompressed size. Algorithms that
// record the decoded length (S2, Zstd frames with content size) reject oversized
// payloads before allocating; the others stop growing their output buffer at the
// limit.
//
// All compressors are stateless values backed by pooled encoders and are safe
// for concurrent use.
package compress
