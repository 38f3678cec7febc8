//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts $DECK (slides from $SLIDES, default
// all) into out/.
func Convert() error {
	mg.Deps(Build)

	deck := os.Getenv("DECK")
	if deck == "" {
		return fmt.Errorf("set DECK to the presentation to convert")
	}
	slides := os.Getenv("SLIDES")
	if slides == "" {
		slides = "all"
	}
	return sh.RunV("bin/slidemd", "convert", deck, "--slides", slides, "--out-dir", outDir, "--details")
}

// Inspect builds the CLI and lists the slides of $DECK.
func Inspect() error {
	mg.Deps(Build)

	deck := os.Getenv("DECK")
	if deck == "" {
		return fmt.Errorf("set DECK to the presentation to inspect")
	}
	return sh.RunV("bin/slidemd", "inspect", deck)
}
