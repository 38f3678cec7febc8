// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// runPattern matches DrawingML text nodes. Matching is a plain scan so that
// malformed markup still yields whatever well-formed runs it contains.
var runPattern = regexp.MustCompile(`<a:t(?:\s[^>]*)?>([^<]*)</a:t>`)

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&apos;", "'",
)

// ExtractRuns returns the non-empty, trimmed, entity-decoded text runs of one
// part in document order. A part without runs yields an empty slice.
func ExtractRuns(markup []byte) []string {
	matches := runPattern.FindAllSubmatch(markup, -1)
	runs := make([]string, 0, len(matches))
	for _, m := range matches {
		text := strings.TrimSpace(norm.NFC.String(entityReplacer.Replace(string(m[1]))))
		if text != "" {
			runs = append(runs, text)
		}
	}
	return runs
}
