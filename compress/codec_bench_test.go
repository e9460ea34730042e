package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data for benchmarks
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// all zeros
	case "compressible":
		pattern := []byte("record id=1234567890 name=Pistike score=3.14159")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	sizes := []int{1024, 16384, 65536}
	compressibilities := []string{"highly_compressible", "compressible", "incompressible"}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					b.Run(fmt.Sprintf("%dKB_%s", size/1024, comp), func(b *testing.B) {
						data := generateBenchmarkData(size, comp)

						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for b.Loop() {
							compressed, err := codec.Compress(data)
							if err != nil {
								b.Fatal(err)
							}
							if _, err = codec.Decompress(compressed, testLimit); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}
