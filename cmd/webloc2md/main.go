package main

import (
	"fmt"
	"os"

	"github.com/shakfu/webloc2md/internal/cli"
	"github.com/shakfu/webloc2md/internal/utils"
)

const (
	loggerInitializationFailedFormat = "logger initialization failed: %w"

	exitCodeRuntimeError = 1
	exitCodeUsageError   = 2
)

// main is the entry point for the webloc2md command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(loggerInitializationFailedFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()

	if executionError := cli.Execute(loggerInstance); executionError != nil {
		loggerInstance.Error(executionError.Error())
		if cli.IsUsageError(executionError) {
			os.Exit(exitCodeUsageError)
		}
		os.Exit(exitCodeRuntimeError)
	}
}
