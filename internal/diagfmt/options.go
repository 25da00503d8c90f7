package diagfmt

// PathMode specifies how source paths are displayed in summaries.
// The report file always carries paths verbatim.
type PathMode uint8

const (
	// PathModeAbsolute prints paths as they appear in the log.
	PathModeAbsolute PathMode = iota
	// PathModeRelative prints paths relative to PrettyOpts.BaseDir when possible.
	PathModeRelative
	PathModeBasename
)

// ParsePathMode converts a flag value to a PathMode.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "", "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	}
	return PathModeAbsolute, false
}

// PrettyOpts configures the human-readable plan summary.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string
	Entries  bool // list every entry under its group
	Width    int  // category column width cap, 0 = unlimited
}

// JSONOpts configures JSON output of a plan.
type JSONOpts struct {
	IncludeEntries bool
	IncludeLines   bool // log line numbers of entries
}
