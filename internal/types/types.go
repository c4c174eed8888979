// Package types defines the cross-package data structures used by the webloc2md CLI.
package types

const (
	// DefaultOutputFileName is the Markdown document written when no output path is given.
	DefaultOutputFileName = "LINKS.md"
	// LinkFileExtension identifies link files by their lowercase extension.
	LinkFileExtension = ".webloc"
)

// Settings holds the fully resolved configuration for one conversion run.
// The CLI layer constructs it once; the renderer treats it as read-only.
type Settings struct {
	RootPath        string
	OutputPath      string
	SkipPatterns    []string
	IncludePatterns []string
	MaxDepth        *int
	IncludeEmpty    bool
	IncludeFiles    bool
	RestrictNames   bool
}

// WithinDepthLimit reports whether children at the given parent depth may still be visited.
func (settings Settings) WithinDepthLimit(depthFromRoot int) bool {
	return settings.MaxDepth == nil || depthFromRoot < *settings.MaxDepth
}
