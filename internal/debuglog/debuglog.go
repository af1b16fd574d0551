// ABOUTME: Debug logging shared across CLI and viewer modes
// ABOUTME: Writes to a file only when explicitly enabled; a no-op otherwise

// Package debuglog provides an optional file-backed debug logger used by
// the CLI and the viewer. When not initialized, Debugf is a no-op.
package debuglog

import (
	"fmt"
	"log"
	"os"
)

var logger *log.Logger

// Init opens filename and directs subsequent Debugf calls to it.
func Init(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}
	logger = log.New(f, "", log.Ltime|log.Lmicroseconds)
	return nil
}

// Debugf logs a formatted message if a debug logger has been initialized.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
