package main

import (
	"errors"
	"fmt"

	"github.com/rmontoya/vstego/internal/stego"
)

// formatExtractError reproduces the exact user-visible strings spec'd for
// extraction failures, so scripts and end-to-end tests can match on them
// verbatim.
func formatExtractError(err error) string {
	var se *stego.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case stego.KindInvalidLength:
			return fmt.Sprintf("[ERROR: Invalid message length (%d). Wrong key or no hidden message.]", se.Value)
		case stego.KindHashMismatch:
			return "[ERROR: HASH MISMATCH - Wrong key or corrupted data]"
		}
	}
	return fmt.Sprintf("[EXTRACTION ERROR: %v]", err)
}
