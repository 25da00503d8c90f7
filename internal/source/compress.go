package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxDecompressed caps the size of an inflated log.
const maxDecompressed = 256 << 20

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress inflates gzip or zstd content, detected by magic bytes.
// Anything else is returned as is.
func decompress(raw []byte) ([]byte, bool, error) {
	switch {
	case bytes.HasPrefix(raw, magicGzip):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, false, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(io.LimitReader(zr, maxDecompressed+1))
		if err != nil {
			return nil, false, fmt.Errorf("gzip: %w", err)
		}
		if len(out) > maxDecompressed {
			return nil, false, fmt.Errorf("gzip: inflated log exceeds %d bytes", maxDecompressed)
		}
		return out, true, nil
	case bytes.HasPrefix(raw, magicZstd):
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressed))
		if err != nil {
			return nil, false, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, false, fmt.Errorf("zstd: %w", err)
		}
		return out, true, nil
	}
	return raw, false, nil
}
