// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/slidemd/pkg/types"
)

var (
	slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	notesPartRe = regexp.MustCompile(`^ppt/notesSlides/notesSlide(\d+)\.xml$`)
)

const (
	titleHintMin = 4
	titleHintMax = 99

	notesRelType = "/notesSlide"
)

// Inventory lists the slides of a package in presentation order.
type Inventory struct {
	Slides     []types.SlideDescriptor
	NotesParts []string
}

// Total returns the number of slides.
func (inv *Inventory) Total() int { return len(inv.Slides) }

// Slide resolves a 1-based slide number. It reports false when n is outside
// 1..Total().
func (inv *Inventory) Slide(n int) (types.SlideDescriptor, bool) {
	if n < 1 || n > len(inv.Slides) {
		return types.SlideDescriptor{}, false
	}
	return inv.Slides[n-1], true
}

// TitleHints returns one entry per slide; slides without a hint get "".
func (inv *Inventory) TitleHints() []string {
	hints := make([]string, len(inv.Slides))
	for i, s := range inv.Slides {
		hints[i] = s.TitleHint
	}
	return hints
}

// Inventory enumerates slide and notes parts, sorts each by the integer in
// the part name and derives a title hint per slide. The K-th notes part is
// associated with the K-th slide. A slide that cannot be read gets no hint.
func (p *Package) Inventory() (*Inventory, error) {
	names := p.PartNames()
	slideParts := sortByIndex(names, slidePartRe)
	notesParts := sortByIndex(names, notesPartRe)

	inv := &Inventory{
		Slides:     make([]types.SlideDescriptor, len(slideParts)),
		NotesParts: notesParts,
	}
	for i, part := range slideParts {
		d := types.SlideDescriptor{Index: i + 1, PartName: part}
		if i < len(notesParts) {
			d.NotesPartName = notesParts[i]
		}
		if data, err := p.ReadPart(part); err == nil {
			d.TitleHint = TitleHint(ExtractRuns(data))
		}
		inv.Slides[i] = d
	}
	return inv, nil
}

// TitleHint returns the first run between 4 and 99 characters long that
// holds no line break, or "" when none qualifies.
func TitleHint(runs []string) string {
	for _, r := range runs {
		n := utf8.RuneCountInString(r)
		if n >= titleHintMin && n <= titleHintMax && !strings.ContainsAny(r, "\r\n") {
			return r
		}
	}
	return ""
}

// sortByIndex keeps the names matching re and orders them by the parsed
// integer capture, so slide10 sorts after slide2.
func sortByIndex(names []string, re *regexp.Regexp) []string {
	type indexed struct {
		name string
		n    int
	}
	var parts []indexed
	for _, name := range names {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, indexed{name: name, n: n})
	}
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].n < parts[j].n })

	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.name
	}
	return out
}

type relationships struct {
	Items []struct {
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// NotesMismatch compares the positional notes association against the
// notesSlide relationship declared by each slide. It returns the slide
// indices whose declared notes part differs from the positional one.
// Slides without a relationships part are not reported.
func (p *Package) NotesMismatch(inv *Inventory) []int {
	var mismatched []int
	for _, s := range inv.Slides {
		relsPart := path.Join(path.Dir(s.PartName), "_rels", path.Base(s.PartName)+".rels")
		data, err := p.ReadPart(relsPart)
		if err != nil {
			continue
		}
		var rels relationships
		if err := xml.Unmarshal(data, &rels); err != nil {
			continue
		}
		declared := ""
		for _, r := range rels.Items {
			if strings.HasSuffix(r.Type, notesRelType) {
				declared = path.Clean(path.Join(path.Dir(s.PartName), r.Target))
				break
			}
		}
		if declared != s.NotesPartName {
			mismatched = append(mismatched, s.Index)
		}
	}
	return mismatched
}
