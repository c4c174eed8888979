// Package cli provides the command line interface of webloc2md.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shakfu/webloc2md/internal/config"
	"github.com/shakfu/webloc2md/internal/render"
	"github.com/shakfu/webloc2md/internal/types"
	"github.com/shakfu/webloc2md/internal/utils"
	"github.com/shakfu/webloc2md/internal/webloc"
)

const (
	rootUse              = "webloc2md [options] <directory>"
	rootShortDescription = "convert a tree of .webloc link files into a Markdown document"
	rootLongDescription  = `webloc2md recursively scans a directory for .webloc link files and writes a
Markdown document mirroring the directory structure. Globs passed with --skip
and --include are matched against each entry's root-relative path, bare name,
and raw path; '**' crosses directory boundaries. Empty directories are omitted
unless --include-empty is set.`
	rootUsageExample = `  # Render the current directory into LINKS.md
  webloc2md .

  # Exclude build output, restrict to two levels
  webloc2md --skip 'build/**' --max-depth 2 ~/Bookmarks

  # Links only, all Unicode names preserved
  webloc2md --no-files --no-restrict-names ~/Research`

	outputFlagName          = "output"
	outputFlagShorthand     = "o"
	skipFlagName            = "skip"
	skipFlagShorthand       = "s"
	includeFlagName         = "include"
	includeFlagShorthand    = "i"
	maxDepthFlagName        = "max-depth"
	maxDepthFlagShorthand   = "d"
	includeEmptyFlagName    = "include-empty"
	filesFlagName           = "files"
	noFilesFlagName         = "no-files"
	restrictNamesFlagName   = "restrict-names"
	noRestrictNamesFlagName = "no-restrict-names"
	copyFlagName            = "copy"
	versionFlagName         = "version"

	outputFlagDescription          = "write the Markdown document to this path"
	skipFlagDescription            = "append a glob pattern to skip (repeatable)"
	includeFlagDescription         = "only scan directories matching a glob (repeatable)"
	maxDepthFlagDescription        = "recurse at most this many levels (0 = root only)"
	includeEmptyFlagDescription    = "emit headings for directories without content"
	filesFlagDescription           = "list non-link files in a files block"
	noFilesFlagDescription         = "suppress the files block"
	restrictNamesFlagDescription   = "restrict display names to a safe ASCII set"
	noRestrictNamesFlagDescription = "allow full Unicode in display names"
	copyFlagDescription            = "also place the rendered document on the clipboard"
	versionFlagDescription         = "display application version"

	versionTemplate       = "webloc2md version: %s\n"
	documentWrittenFormat = "wrote %s\n"
	configWrittenFormat   = "wrote configuration to %s\n"

	configUse                   = "config"
	configShortDescription      = "manage configuration files"
	configInitUse               = "init"
	configInitShortDescription  = "write the default configuration template"
	globalFlagName              = "global"
	globalFlagDescription       = "write the global configuration instead of the local one"
	forceFlagName               = "force"
	forceFlagDescription        = "overwrite an existing configuration file"
	errorDirectoryArityMessage  = "expected exactly one directory argument"
	errorNegativeMaxDepthFormat = "invalid max depth %d: must be zero or positive"
	errorRootMissingFormat      = "path does not exist: %s"
	errorRootNotDirectoryFormat = "path is not a directory: %s"
	errorWriteOutputFormat      = "writing %s: %w"
	warningClipboardMessage     = "clipboard copy failed"
)

// commandOptions stores raw flag values before they are resolved into Settings.
type commandOptions struct {
	outputPath        string
	skipPatterns      []string
	includePatterns   []string
	maxDepth          int
	includeEmpty      bool
	listFiles         bool
	suppressFiles     bool
	restrictNames     bool
	allowUnicodeNames bool
	copyToClipboard   bool
}

// Execute runs the webloc2md application.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(logger, systemClipboard{})
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command with the conversion flags
// and the config subcommand.
func createRootCommand(logger *zap.Logger, copier Copier) *cobra.Command {
	var options commandOptions
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(command *cobra.Command, arguments []string) error {
			if command.Flags().Changed(versionFlagName) {
				return nil
			}
			if len(arguments) != 1 {
				return NewUsageError(errors.New(errorDirectoryArityMessage))
			}
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runConversion(command, arguments[0], options, logger, copier)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputPath, outputFlagName, outputFlagShorthand, types.DefaultOutputFileName, outputFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.skipPatterns, skipFlagName, skipFlagShorthand, nil, skipFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.includePatterns, includeFlagName, includeFlagShorthand, nil, includeFlagDescription)
	rootCommand.Flags().IntVarP(&options.maxDepth, maxDepthFlagName, maxDepthFlagShorthand, 0, maxDepthFlagDescription)
	rootCommand.Flags().BoolVar(&options.includeEmpty, includeEmptyFlagName, false, includeEmptyFlagDescription)
	rootCommand.Flags().BoolVar(&options.listFiles, filesFlagName, true, filesFlagDescription)
	rootCommand.Flags().BoolVar(&options.suppressFiles, noFilesFlagName, false, noFilesFlagDescription)
	rootCommand.Flags().BoolVar(&options.restrictNames, restrictNamesFlagName, true, restrictNamesFlagDescription)
	rootCommand.Flags().BoolVar(&options.allowUnicodeNames, noRestrictNamesFlagName, false, noRestrictNamesFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)

	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		return NewUsageError(flagError)
	})

	rootCommand.AddCommand(createConfigCommand())
	return rootCommand
}

// runConversion resolves settings, renders the tree, and writes the document.
func runConversion(command *cobra.Command, rootDirectory string, options commandOptions, logger *zap.Logger, copier Copier) error {
	if command.Flags().Changed(maxDepthFlagName) && options.maxDepth < 0 {
		return NewUsageError(fmt.Errorf(errorNegativeMaxDepthFormat, options.maxDepth))
	}

	fileConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}

	settings, copyRequested := resolveSettings(command, options, fileConfiguration, rootDirectory)

	rootInformation, rootStatError := os.Stat(settings.RootPath)
	if rootStatError != nil {
		return fmt.Errorf(errorRootMissingFormat, settings.RootPath)
	}
	if !rootInformation.IsDir() {
		return fmt.Errorf(errorRootNotDirectoryFormat, settings.RootPath)
	}

	renderer := render.NewRenderer(settings, webloc.NewPlistParser(), logger)
	renderedDocument, renderError := renderer.Render()
	if renderError != nil {
		return renderError
	}

	if writeError := os.WriteFile(settings.OutputPath, []byte(renderedDocument), 0o644); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, settings.OutputPath, writeError)
	}
	fmt.Fprintf(command.OutOrStdout(), documentWrittenFormat, settings.OutputPath)

	if copyRequested {
		if copyError := copier.Copy(renderedDocument); copyError != nil {
			logger.Warn(warningClipboardMessage, zap.Error(copyError))
		}
	}
	return nil
}

// resolveSettings layers built-in defaults, configuration files, and
// command-line flags (flags win) into the immutable run settings.
func resolveSettings(command *cobra.Command, options commandOptions, fileConfiguration config.ApplicationConfiguration, rootDirectory string) (types.Settings, bool) {
	outputPath := types.DefaultOutputFileName
	if fileConfiguration.Output != "" {
		outputPath = fileConfiguration.Output
	}
	if command.Flags().Changed(outputFlagName) {
		outputPath = options.outputPath
	}

	userSkipPatterns := append(append([]string(nil), fileConfiguration.Skip...), options.skipPatterns...)
	includePatterns := append(append([]string(nil), fileConfiguration.Include...), options.includePatterns...)

	var maxDepth *int
	if fileConfiguration.MaxDepth != nil {
		configuredDepth := *fileConfiguration.MaxDepth
		maxDepth = &configuredDepth
	}
	if command.Flags().Changed(maxDepthFlagName) {
		flagDepth := options.maxDepth
		maxDepth = &flagDepth
	}

	includeEmpty := false
	if fileConfiguration.IncludeEmpty != nil {
		includeEmpty = *fileConfiguration.IncludeEmpty
	}
	if options.includeEmpty {
		includeEmpty = true
	}

	includeFiles := true
	if fileConfiguration.Files != nil {
		includeFiles = *fileConfiguration.Files
	}
	if command.Flags().Changed(filesFlagName) {
		includeFiles = options.listFiles
	}
	if options.suppressFiles {
		includeFiles = false
	}

	restrictNames := true
	if fileConfiguration.RestrictNames != nil {
		restrictNames = *fileConfiguration.RestrictNames
	}
	if command.Flags().Changed(restrictNamesFlagName) {
		restrictNames = options.restrictNames
	}
	if options.allowUnicodeNames {
		restrictNames = false
	}

	copyRequested := false
	if fileConfiguration.Clipboard != nil {
		copyRequested = *fileConfiguration.Clipboard
	}
	if options.copyToClipboard {
		copyRequested = true
	}

	settings := types.Settings{
		RootPath:        rootDirectory,
		OutputPath:      outputPath,
		SkipPatterns:    config.CombineSkipPatterns(userSkipPatterns),
		IncludePatterns: includePatterns,
		MaxDepth:        maxDepth,
		IncludeEmpty:    includeEmpty,
		IncludeFiles:    includeFiles,
		RestrictNames:   restrictNames,
	}
	return settings, copyRequested
}

// createConfigCommand returns the config subcommand with its init action.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
	}

	var globalTarget bool
	var forceOverwrite bool
	initCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: forceOverwrite})
			if initializeError != nil {
				return initializeError
			}
			fmt.Fprintf(command.OutOrStdout(), configWrittenFormat, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)

	configCommand.AddCommand(initCommand)
	return configCommand
}
