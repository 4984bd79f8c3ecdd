// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

// Package filename sanitizes user-supplied file names before they are written
// to the upload tree.
//
// # Why normalization matters
//
// Browsers on different platforms submit the same Thai or accented file name
// in different Unicode forms (macOS decomposes, others compose). Normalizing
// to NFC ensures the stored name and the URL derived from it always match.
package filename

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fallback is used when sanitization leaves nothing usable.
const fallback = "file"

var (
	// whitespace matches any run of whitespace characters.
	whitespace = regexp.MustCompile(`\s+`)
	// unsafe matches characters that are problematic in URLs or file paths.
	unsafe = regexp.MustCompile(`[\\/:*?"<>|#%&{}$!'@+=]+`)
	// multiDash collapses consecutive dashes into one.
	multiDash = regexp.MustCompile(`-{2,}`)
)

// Sanitize converts an uploaded file name into a form safe to store on disk
// and embed in a URL.
//
// # Transformation Pipeline
//
//  1. Strips any directory components.
//  2. Normalizes to NFC (composes decomposed Unicode sequences).
//  3. Replaces whitespace runs and unsafe punctuation with dashes.
//  4. Collapses consecutive dashes and trims leading/trailing ones.
//
// Unicode letters (including Thai) are preserved; only structure-breaking
// characters are replaced.
func Sanitize(name string) string {
	// 1. Drop directory components, defend against traversal
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return fallback
	}

	// 2. Compose Unicode sequences
	base = norm.NFC.String(base)

	// 3. Replace whitespace and unsafe characters
	base = whitespace.ReplaceAllString(base, "-")
	base = unsafe.ReplaceAllString(base, "-")

	// 4. Clean up dashes
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" || base == "." || base == ".." {
		return fallback
	}

	return base
}
