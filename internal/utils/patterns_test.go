package utils_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shakfu/webloc2md/internal/utils"
)

// TestMatchCandidates verifies the candidate strings built for pattern matching.
func TestMatchCandidates(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	entryPath := filepath.Join(rootDirectory, "docs", "private")

	candidates := utils.MatchCandidates(rootDirectory, entryPath)

	expectedCandidates := []string{"docs/private", "private", filepath.ToSlash(entryPath)}
	if !reflect.DeepEqual(candidates, expectedCandidates) {
		testingHandle.Fatalf("expected candidates %v, got %v", expectedCandidates, candidates)
	}
}

// TestMatchCandidatesForRoot verifies that the root itself contributes no relative candidate.
func TestMatchCandidatesForRoot(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	candidates := utils.MatchCandidates(rootDirectory, rootDirectory)

	expectedCandidates := []string{filepath.Base(rootDirectory), filepath.ToSlash(rootDirectory)}
	if !reflect.DeepEqual(candidates, expectedCandidates) {
		testingHandle.Fatalf("expected candidates %v, got %v", expectedCandidates, candidates)
	}
}

// TestMatchesAnyPattern verifies glob evaluation over candidate sets.
func TestMatchesAnyPattern(testingHandle *testing.T) {
	testCases := []struct {
		name          string
		candidates    []string
		patterns      []string
		expectedMatch bool
	}{
		{
			name:          "EmptyPatternListNeverMatches",
			candidates:    []string{"docs/private"},
			patterns:      nil,
			expectedMatch: false,
		},
		{
			name:          "EmptyCandidateSetNeverMatches",
			candidates:    nil,
			patterns:      []string{"*"},
			expectedMatch: false,
		},
		{
			name:          "BareNameMatches",
			candidates:    []string{"docs/.git", ".git"},
			patterns:      []string{".git"},
			expectedMatch: true,
		},
		{
			name:          "SingleStarStaysWithinSegment",
			candidates:    []string{"docs/private/notes"},
			patterns:      []string{"docs/*"},
			expectedMatch: false,
		},
		{
			name:          "DoubleStarCrossesSegments",
			candidates:    []string{"docs/private/notes"},
			patterns:      []string{"docs/**"},
			expectedMatch: true,
		},
		{
			name:          "QuestionMarkMatchesOneCharacter",
			candidates:    []string{"v2"},
			patterns:      []string{"v?"},
			expectedMatch: true,
		},
		{
			name:          "CharacterClassMatches",
			candidates:    []string{"build-3"},
			patterns:      []string{"build-[0-9]"},
			expectedMatch: true,
		},
		{
			name:          "MalformedPatternNeverMatches",
			candidates:    []string{"anything"},
			patterns:      []string{"[unclosed"},
			expectedMatch: false,
		},
		{
			name:          "AnyPatternAnyCandidateSuffices",
			candidates:    []string{"docs/private", "private"},
			patterns:      []string{"missing", "priv*"},
			expectedMatch: true,
		},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			isMatched := utils.MatchesAnyPattern(testCase.candidates, testCase.patterns)
			if isMatched != testCase.expectedMatch {
				testingHandle.Fatalf("expected match=%v for candidates %v patterns %v", testCase.expectedMatch, testCase.candidates, testCase.patterns)
			}
		})
	}
}
