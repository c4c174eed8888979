// Package render walks a directory tree of link files and produces a Markdown document.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/shakfu/webloc2md/internal/types"
	"github.com/shakfu/webloc2md/internal/utils"
	"github.com/shakfu/webloc2md/internal/webloc"
)

const (
	// errorAbsolutePathFormat is used when the absolute root path cannot be determined.
	errorAbsolutePathFormat = "resolving absolute path for %s: %w"

	warningListTruncatedMessage = "directory listing truncated"
	debugLinkDroppedMessage     = "link file dropped"

	pathLogField = "path"
)

// LinkEntry pairs a sanitized display name with its verbatim URL.
type LinkEntry struct {
	DisplayName string
	URL         string
}

// DirectoryReader lists a directory. It may return both entries and an error,
// in which case the entries read before the failure are still rendered.
type DirectoryReader func(directoryPath string) ([]os.DirEntry, error)

// Renderer converts the directory tree under Settings.RootPath into Markdown.
// It reads the filesystem but never mutates it, and keeps no state between runs.
type Renderer struct {
	settings      types.Settings
	parser        webloc.Parser
	logger        *zap.Logger
	readDirectory DirectoryReader
}

// NewRenderer constructs a Renderer over the provided settings, link parser, and logger.
// A nil logger disables diagnostics.
func NewRenderer(settings types.Settings, parser webloc.Parser, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{settings: settings, parser: parser, logger: logger, readDirectory: os.ReadDir}
}

// WithDirectoryReader replaces the directory listing function and returns the renderer.
func (renderer *Renderer) WithDirectoryReader(reader DirectoryReader) *Renderer {
	renderer.readDirectory = reader
	return renderer
}

// Render produces the complete Markdown document for the configured root.
// The returned text is byte-for-byte deterministic for a given filesystem
// snapshot because every entry group is sorted before emission.
func (renderer *Renderer) Render() (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(renderer.settings.RootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, renderer.settings.RootPath, absolutePathError)
	}
	_, documentBuffer := renderer.renderDirectory(absoluteRootPath, absoluteRootPath, 0)
	return documentBuffer.String(), nil
}

// renderDirectory renders one directory into a private buffer and reports
// whether anything was emitted. Parents append a child buffer only on a true
// report, so an empty subtree contributes nothing, not even its heading.
func (renderer *Renderer) renderDirectory(rootPath string, directoryPath string, depthFromRoot int) (bool, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	directoryCandidates := utils.MatchCandidates(rootPath, directoryPath)

	// Skip patterns prune the whole subtree and win over include patterns.
	if directoryPath != rootPath && utils.MatchesAnyPattern(directoryCandidates, renderer.settings.SkipPatterns) {
		return false, buffer
	}

	headingLevel := 1 + depthFromRoot
	headingTitle := utils.SanitizeDisplayName(filepath.Base(directoryPath), renderer.settings.RestrictNames)

	contentEligible := len(renderer.settings.IncludePatterns) == 0 ||
		utils.MatchesAnyPattern(directoryCandidates, renderer.settings.IncludePatterns)
	// The root never matches a skip pattern above and may still host matching
	// descendants, so it always qualifies for the empty-node override.
	emptinessEligible := directoryPath == rootPath || contentEligible

	headingWritten := false
	ensureHeading := func() {
		if !headingWritten {
			buffer.WriteString(headingPrefix(headingLevel))
			buffer.WriteString(" ")
			buffer.WriteString(escapeMarkdownText(headingTitle))
			buffer.WriteString("\n\n")
			headingWritten = true
		}
	}

	directoryEntries, readDirectoryError := renderer.readDirectory(directoryPath)
	if readDirectoryError != nil {
		// os.ReadDir returns the entries read before the failure; keep them
		// and continue with a truncated listing.
		renderer.logger.Warn(warningListTruncatedMessage, zap.String(pathLogField, directoryPath), zap.Error(readDirectoryError))
	}

	linkEntries, plainFileNames, subdirectoryNames := renderer.classifyEntries(rootPath, directoryPath, directoryEntries, contentEligible)

	sort.Slice(linkEntries, func(firstIndex, secondIndex int) bool {
		return linkEntries[firstIndex].DisplayName < linkEntries[secondIndex].DisplayName
	})
	sort.Strings(plainFileNames)
	sort.Strings(subdirectoryNames)

	for _, linkEntry := range linkEntries {
		ensureHeading()
		fmt.Fprintf(buffer, linkLineFormat, escapeMarkdownText(linkEntry.DisplayName), linkEntry.URL)
	}
	if len(linkEntries) > 0 {
		buffer.WriteString("\n")
	}

	if len(plainFileNames) > 0 {
		ensureHeading()
		buffer.WriteString(filesBlockLabel)
		for _, plainFileName := range plainFileNames {
			linkTarget := utils.RelativePathOrSelf(filepath.Join(directoryPath, plainFileName), rootPath)
			fileDisplayName := utils.SanitizeDisplayName(plainFileName, renderer.settings.RestrictNames)
			fmt.Fprintf(buffer, fileLineFormat, escapeMarkdownText(fileDisplayName), linkTarget)
		}
		buffer.WriteString("\n")
	}

	if renderer.settings.WithinDepthLimit(depthFromRoot) {
		for _, subdirectoryName := range subdirectoryNames {
			subdirectoryPath := filepath.Join(directoryPath, subdirectoryName)
			childProduced, childBuffer := renderer.renderDirectory(rootPath, subdirectoryPath, depthFromRoot+1)
			if childProduced {
				ensureHeading()
				buffer.Write(childBuffer.Bytes())
			}
		}
	}

	if !headingWritten && renderer.settings.IncludeEmpty && emptinessEligible {
		ensureHeading()
	}

	return headingWritten, buffer
}

// classifyEntries splits a directory listing into surviving link entries,
// plain file names, and subdirectory names. Skip-matched entries are dropped
// outright; links and files are only gathered for content-eligible nodes,
// while subdirectories are always collected for recursion.
func (renderer *Renderer) classifyEntries(rootPath string, directoryPath string, directoryEntries []os.DirEntry, contentEligible bool) ([]LinkEntry, []string, []string) {
	var linkEntries []LinkEntry
	var plainFileNames []string
	var subdirectoryNames []string

	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directoryPath, directoryEntry.Name())
		if utils.MatchesAnyPattern(utils.MatchCandidates(rootPath, entryPath), renderer.settings.SkipPatterns) {
			continue
		}
		if directoryEntry.IsDir() {
			subdirectoryNames = append(subdirectoryNames, directoryEntry.Name())
			continue
		}
		if !contentEligible || !directoryEntry.Type().IsRegular() {
			continue
		}

		entryExtension := filepath.Ext(directoryEntry.Name())
		if strings.EqualFold(entryExtension, types.LinkFileExtension) {
			linkURL, parseError := renderer.readLinkURL(entryPath)
			if parseError != nil {
				renderer.logger.Debug(debugLinkDroppedMessage, zap.String(pathLogField, entryPath), zap.Error(parseError))
				continue
			}
			displayName := strings.TrimSuffix(directoryEntry.Name(), entryExtension)
			linkEntries = append(linkEntries, LinkEntry{
				DisplayName: utils.SanitizeDisplayName(displayName, renderer.settings.RestrictNames),
				URL:         linkURL,
			})
			continue
		}

		if renderer.settings.IncludeFiles {
			plainFileNames = append(plainFileNames, directoryEntry.Name())
		}
	}

	return linkEntries, plainFileNames, subdirectoryNames
}

// readLinkURL loads one link file and extracts its URL. An unreadable file,
// an undecodable payload, or an empty URL all surface as an error for the
// caller to drop the entry.
func (renderer *Renderer) readLinkURL(linkFilePath string) (string, error) {
	linkFileBytes, readError := os.ReadFile(linkFilePath)
	if readError != nil {
		return "", readError
	}
	linkURL, parseError := renderer.parser.Parse(linkFileBytes)
	if parseError != nil {
		return "", parseError
	}
	if linkURL == "" {
		return "", webloc.ErrNoURL
	}
	return linkURL, nil
}
