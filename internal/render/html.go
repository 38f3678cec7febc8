// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns converted Markdown into sanitized HTML for preview.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// policy is shared; bluemonday policies are safe for concurrent use once built.
var policy = bluemonday.UGCPolicy()

// HTML renders markdown as an HTML fragment with unsafe markup removed.
func HTML(markdown []byte) []byte {
	unsafe := blackfriday.Run(markdown)
	return policy.SanitizeBytes(unsafe)
}

// Page wraps the rendered fragment in a minimal standalone HTML document.
func Page(title string, markdown []byte) []byte {
	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", bluemonday.StrictPolicy().Sanitize(title))
	b.WriteString("</head>\n<body>\n")
	b.Write(HTML(markdown))
	b.WriteString("</body>\n</html>\n")
	return b.Bytes()
}
