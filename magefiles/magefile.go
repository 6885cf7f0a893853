//go:build mage

// Package main contains Mage build targets for menuconv.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// runDirs lists the working directories a conversion run reads and writes.
var runDirs = []string{
	"input",
	"output",
	"logs",
}

const (
	binDir  = "bin"
	binName = "menuconv"
)

// Init creates the input, output and logs directories.
func Init() error {
	for _, dir := range runDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Run directories initialized.")
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build compiles the CLI binary into bin/.
func Build() error {
	mg.Deps(Test)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Convert builds the binary and runs one conversion.
func Convert() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName))
}
