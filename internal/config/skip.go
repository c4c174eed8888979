package config

import (
	"github.com/shakfu/webloc2md/internal/utils"
)

// defaultSkipPatterns seeds every run with the usual version-control and
// cache directories. Single names match an entry at any depth because the
// matcher always tries the bare entry name as a candidate.
var defaultSkipPatterns = []string{
	".git",
	".hg",
	".svn",
	".bzr",
	".idea",
	".DS_Store",
	"__pycache__",
	"node_modules",
}

// DefaultSkipPatterns returns a copy of the seed skip patterns.
func DefaultSkipPatterns() []string {
	return append([]string(nil), defaultSkipPatterns...)
}

// CombineSkipPatterns appends user patterns to the default seed and removes
// duplicates while preserving order.
func CombineSkipPatterns(userPatterns []string) []string {
	combinedPatterns := append(DefaultSkipPatterns(), userPatterns...)
	return utils.DeduplicatePatterns(combinedPatterns)
}
