package source

// FileFlags encodes how a log was normalized on load.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a byte order mark was stripped.
	FileHadBOM
	// FileDecodedUTF16 indicates the content was transcoded from UTF-16.
	FileDecodedUTF16
	// FileNormalizedCRLF indicates \r\n line endings were rewritten to \n.
	FileNormalizedCRLF
	// FileDecompressed indicates the log was stored gzip or zstd compressed.
	FileDecompressed
	// FileNormalizedCR indicates lone \r line endings were rewritten to \n.
	FileNormalizedCR
)

// Has reports whether all bits of mask are set.
func (f FileFlags) Has(mask FileFlags) bool {
	return f&mask == mask
}

// File is a loaded diagnostics log: UTF-8, \n line endings, no BOM.
type File struct {
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}
