// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates URL slugs from display names.
//
// # Usage
//
// Country names become route segments ("South Korea" → "south-korea").
// [Path] is the literal form the frontend routes use; [From] is the
// accent-folded ASCII form used to match loosely typed input.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Path lowercases s and replaces every space with a hyphen. Nothing else changes,
// so "Côte d'Ivoire" becomes "côte-d'ivoire".
func Path(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Equal reports whether two names or slugs refer to the same route segment,
// either literally or after accent folding.
func Equal(a, b string) bool {
	if Path(a) == Path(b) {
		return true
	}
	folded := From(a)
	return folded != "" && folded == From(b)
}

// Title turns a slug back into a readable label ("south-korea" → "south korea").
func Title(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
