package main

import (
	"io"
	"os"
)

// isStdinPiped checks if stdin is being piped to the program
func isStdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// pipedStdin returns os.Stdin only when something is piped into it
func pipedStdin() io.Reader {
	if isStdinPiped() {
		return os.Stdin
	}
	return nil
}
