// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptxtest builds small presentation packages on disk for tests.
package pptxtest

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Slide describes one slide of a generated deck.
type Slide struct {
	// Runs become one <a:t> element each, in order.
	Runs []string
	// Notes, when non-nil, produce a notes part and a notesSlide relationship.
	Notes []string
	// Raw replaces the generated slide markup verbatim.
	Raw string
	// Index overrides the number in the part name (default: position + 1).
	Index int
}

// Deck describes a generated presentation.
type Deck struct {
	Slides  []Slide
	Title   string
	Creator string
	Subject string
	// OmitPresentation leaves out ppt/presentation.xml.
	OmitPresentation bool
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// SlideXML renders a minimal slide part holding runs in one shape.
func SlideXML(runs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:cSld><p:spTree><p:sp><p:txBody>`)
	for _, r := range runs {
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>%s</a:t></a:r></a:p>`, escaper.Replace(r))
	}
	b.WriteString(`</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`)
	return b.String()
}

// Write creates dir/name as a presentation package and returns its path.
func Write(t testing.TB, dir, name string, d Deck) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	add := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	add("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`)
	if !d.OmitPresentation {
		add("ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8"?><p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	}
	add("docProps/core.xml", fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?><cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>%s</dc:title><dc:creator>%s</dc:creator><dc:subject>%s</dc:subject></cp:coreProperties>`,
		escaper.Replace(d.Title), escaper.Replace(d.Creator), escaper.Replace(d.Subject)))
	add("docProps/app.xml", fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?><Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Slides>%d</Slides></Properties>`,
		len(d.Slides)))

	for i, s := range d.Slides {
		n := s.Index
		if n == 0 {
			n = i + 1
		}
		markup := s.Raw
		if markup == "" {
			markup = SlideXML(s.Runs...)
		}
		add(fmt.Sprintf("ppt/slides/slide%d.xml", n), markup)

		if s.Notes != nil {
			add(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), SlideXML(s.Notes...))
			add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), fmt.Sprintf(
				`<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/></Relationships>`,
				n))
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip %s: %v", path, err)
	}
	return path
}
