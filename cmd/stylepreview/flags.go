package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

func validateStylePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("style document is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve style path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("style document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("style path %s is a directory", abs)
	}

	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
