package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var builtinSeeds = []string{
	"",
	"/a/foo.ts\n10,5: msg [error_ALPHA]\n/a/bar.ts\n10,5: msg [error_ALPHA]\n20,1: msg [error_INTERNAL]\n30,2: msg [error_BETA]\n",
	"1,1: orphan [error_X]\n/a.ts\n2,2: x [error_X]\n",
	"/a.ts\r\n  3,4: a [error_INTERNAL] [error_PASCAL]\r\n5,6: b [error_PASCAL]\r\n",
	"\xef\xbb\xbf/bom.ts\n1,1: [error_BOM]\n",
	"\xff\xfe/\x00a\x00.\x00t\x00s\x00\n\x00",
	"/a.ts\n007,03: padded [error_Z]\n/b.ts\n1,1: [error_Z]\n1,1: [error_Z]\n",
	"not a path\n1,1 missing colon [error_A]\n/relative.ts? no\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.lst log under the repository testdata dir.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lst" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(b []byte) []byte {
	if len(b) > maxSeedBytes {
		b = b[:maxSeedBytes]
	}
	return append([]byte(nil), b...)
}
