package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const plainLog = "/a/foo.ts\r\n10,5: msg [error_ALPHA]\r\n"

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(data), nil)
}

func TestLoadCompressedLogs(t *testing.T) {
	cases := []struct {
		name string
		raw  func(t *testing.T) []byte
	}{
		{"log.lst.gz", func(t *testing.T) []byte { return gzipBytes(t, plainLog) }},
		{"log.lst.zst", func(t *testing.T) []byte { return zstdBytes(t, plainLog) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			require.NoError(t, os.WriteFile(path, tc.raw(t), 0o600))

			f, err := Load(path)
			require.NoError(t, err)
			require.True(t, f.Flags.Has(FileDecompressed|FileNormalizedCRLF))
			require.Equal(t, []string{"/a/foo.ts", "10,5: msg [error_ALPHA]"}, f.Lines())
		})
	}
}

func TestLoadPlainIsNotDecompressed(t *testing.T) {
	f, err := FromBytes("plain.lst", []byte(plainLog))
	require.NoError(t, err)
	require.False(t, f.Flags.Has(FileDecompressed))
}

func TestLoadCorruptGzip(t *testing.T) {
	raw := gzipBytes(t, plainLog)
	_, err := FromBytes("broken.lst.gz", raw[:len(raw)/2])
	require.Error(t, err)
	require.Contains(t, err.Error(), "gzip")
}
