// Package config loads layered configuration files and provides the default skip patterns.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// LocalConfigFileName is the per-directory configuration file.
	LocalConfigFileName = ".webloc2md.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".webloc2md"
	// GlobalConfigFileName is the configuration file inside the global directory.
	GlobalConfigFileName = "config.yaml"
)

// ApplicationConfiguration holds file-sourced defaults for a conversion run.
// Pointer-typed fields distinguish an absent value from an explicit false or zero,
// so command-line flags can overlay only what the user actually set.
type ApplicationConfiguration struct {
	Output        string   `mapstructure:"output"`
	Skip          []string `mapstructure:"skip"`
	Include       []string `mapstructure:"include"`
	MaxDepth      *int     `mapstructure:"max_depth"`
	IncludeEmpty  *bool    `mapstructure:"include_empty"`
	Files         *bool    `mapstructure:"files"`
	RestrictNames *bool    `mapstructure:"restrict_names"`
	Clipboard     *bool    `mapstructure:"clipboard"`
}

// LoadOptions controls how configuration files are discovered.
type LoadOptions struct {
	WorkingDirectory string
	HomeDirectory    string
}

// LoadApplicationConfiguration merges the global configuration file with the
// local one; local values win. Missing files contribute nothing.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, homeError := os.UserHomeDir(); homeError == nil {
			homeDirectory = resolvedHome
		}
	}

	var merged ApplicationConfiguration
	if homeDirectory != "" {
		globalConfigPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
		globalConfiguration, globalLoadError := loadConfigurationFromPath(globalConfigPath)
		if globalLoadError != nil {
			return ApplicationConfiguration{}, globalLoadError
		}
		merged = globalConfiguration
	}

	localConfigPath := filepath.Join(workingDirectory, LocalConfigFileName)
	localConfiguration, localLoadError := loadConfigurationFromPath(localConfigPath)
	if localLoadError != nil {
		return ApplicationConfiguration{}, localLoadError
	}
	return merged.Merge(localConfiguration), nil
}

// loadConfigurationFromPath reads one configuration file through viper.
// A missing file yields the zero configuration without error.
func loadConfigurationFromPath(configPath string) (ApplicationConfiguration, error) {
	pathInformation, statError := os.Stat(configPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("inspect configuration %s: %w", configPath, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configPath)
	}

	configurationReader := viper.New()
	configurationReader.SetConfigFile(configPath)
	if readError := configurationReader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configPath, readError)
	}
	var loadedConfiguration ApplicationConfiguration
	if decodeError := configurationReader.Unmarshal(&loadedConfiguration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configPath, decodeError)
	}
	return loadedConfiguration, nil
}

// Merge overlays override onto the receiver, returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Output != "" {
		result.Output = override.Output
	}
	if len(override.Skip) > 0 {
		result.Skip = append([]string(nil), override.Skip...)
	}
	if len(override.Include) > 0 {
		result.Include = append([]string(nil), override.Include...)
	}
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	if override.IncludeEmpty != nil {
		result.IncludeEmpty = cloneBool(override.IncludeEmpty)
	}
	if override.Files != nil {
		result.Files = cloneBool(override.Files)
	}
	if override.RestrictNames != nil {
		result.RestrictNames = cloneBool(override.RestrictNames)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	copied := *value
	return &copied
}

func cloneInt(value *int) *int {
	copied := *value
	return &copied
}
