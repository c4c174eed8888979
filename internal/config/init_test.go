package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitializeConfigurationWritesLocalTemplate verifies template creation in the working directory.
func TestInitializeConfigurationWritesLocalTemplate(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()

	writtenPath, initializeError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	})
	if initializeError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initializeError)
	}
	if writtenPath != filepath.Join(workingDirectory, LocalConfigFileName) {
		testingHandle.Fatalf("unexpected destination %q", writtenPath)
	}

	writtenContent, readError := os.ReadFile(writtenPath)
	if readError != nil {
		testingHandle.Fatalf("reading written configuration: %v", readError)
	}
	if !strings.Contains(string(writtenContent), "output: LINKS.md") {
		testingHandle.Fatalf("template missing output default: %q", writtenContent)
	}
}

// TestInitializeConfigurationRefusesOverwrite verifies that an existing file requires force.
func TestInitializeConfigurationRefusesOverwrite(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()
	existingPath := filepath.Join(workingDirectory, LocalConfigFileName)
	if writeError := os.WriteFile(existingPath, []byte("output: KEEP.md\n"), 0o600); writeError != nil {
		testingHandle.Fatalf("writing existing configuration: %v", writeError)
	}

	if _, initializeError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
	}); initializeError == nil {
		testingHandle.Fatal("expected an error without force")
	}

	if _, initializeError := InitializeConfiguration(InitOptions{
		Target:           InitTargetLocal,
		WorkingDirectory: workingDirectory,
		Force:            true,
	}); initializeError != nil {
		testingHandle.Fatalf("force overwrite failed: %v", initializeError)
	}

	overwrittenContent, readError := os.ReadFile(existingPath)
	if readError != nil {
		testingHandle.Fatalf("reading overwritten configuration: %v", readError)
	}
	if strings.Contains(string(overwrittenContent), "KEEP.md") {
		testingHandle.Fatalf("existing content survived force overwrite: %q", overwrittenContent)
	}
}

// TestInitializeConfigurationGlobalTarget verifies creation under the home configuration directory.
func TestInitializeConfigurationGlobalTarget(testingHandle *testing.T) {
	homeDirectory := testingHandle.TempDir()

	writtenPath, initializeError := InitializeConfiguration(InitOptions{
		Target:        InitTargetGlobal,
		HomeDirectory: homeDirectory,
	})
	if initializeError != nil {
		testingHandle.Fatalf("InitializeConfiguration error: %v", initializeError)
	}

	expectedPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
	if writtenPath != expectedPath {
		testingHandle.Fatalf("expected %q, got %q", expectedPath, writtenPath)
	}
	if _, statError := os.Stat(writtenPath); statError != nil {
		testingHandle.Fatalf("written configuration missing: %v", statError)
	}
}
