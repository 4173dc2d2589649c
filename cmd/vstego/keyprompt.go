package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptKey reads a key from the controlling terminal without echoing it,
// so a shared secret never lands in shell history or a process listing via
// a --key flag. Used whenever --key is omitted.
func promptKey(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal available to read a key interactively; pass --key")
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return string(b), nil
}

// resolveKey returns flagKey unchanged if set, otherwise prompts for it
// interactively.
func resolveKey(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}
	return promptKey("Key: ")
}
