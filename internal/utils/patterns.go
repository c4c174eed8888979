package utils

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchCandidates builds the strings glob patterns are tried against for one
// filesystem entry: the path relative to the traversal root (when it can be
// computed and is not the root itself), the bare entry name, and the path as
// given. Candidates use forward slashes so patterns behave identically across
// platforms.
func MatchCandidates(rootPath string, entryPath string) []string {
	candidates := make([]string, 0, 3)
	relativePath := RelativePathOrSelf(entryPath, rootPath)
	if relativePath != "." && relativePath != filepath.Clean(entryPath) {
		candidates = append(candidates, relativePath)
	}
	candidates = append(candidates, filepath.Base(entryPath))
	candidates = append(candidates, filepath.ToSlash(entryPath))
	return candidates
}

// MatchesAnyPattern reports whether any glob pattern matches any candidate
// string. An empty pattern list never matches, and neither does an empty
// candidate set. Patterns use doublestar semantics: `*` and `?` stay within a
// single path segment, `**` crosses segment boundaries, and character classes
// follow POSIX glob rules. A malformed pattern never matches anything.
func MatchesAnyPattern(candidates []string, patterns []string) bool {
	for _, patternValue := range patterns {
		for _, candidateValue := range candidates {
			isMatched, matchError := doublestar.Match(patternValue, candidateValue)
			if matchError == nil && isMatched {
				return true
			}
		}
	}
	return false
}
