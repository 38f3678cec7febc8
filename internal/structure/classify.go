// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the structural role of one text run.
type Kind int

const (
	Plain Kind = iota
	Heading
	ListItem
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	default:
		return "plain"
	}
}

// Classifier decides the role of individual runs and how consecutive plain
// runs are joined. Engine depends only on this interface so the heuristics
// can be replaced (for example per locale) without touching grouping.
type Classifier interface {
	// Classify returns the role of a single run.
	Classify(run string) Kind

	// StripListMarker removes a leading bullet, number or letter marker.
	StripListMarker(run string) string

	// BreakBetween reports whether next starts a new line instead of
	// continuing prev with a space.
	BreakBetween(prev, next string) bool
}

// EnglishMarkers are discourse and transition words that never open a heading.
var EnglishMarkers = []string{
	"note", "notes", "example", "for example", "e.g", "i.e", "however", "therefore",
	"thus", "hence", "moreover", "furthermore", "in addition", "additionally",
	"also", "but", "tip", "remark", "besides", "in summary", "in conclusion",
}

// ChineseMarkers are the Chinese equivalents of EnglishMarkers.
var ChineseMarkers = []string{
	"备注", "注：", "注意", "说明", "提示", "例如", "比如",
	"另外", "此外", "然而", "但是", "因此", "所以", "总之",
}

const (
	headingMinLen = 10
	headingMaxLen = 100

	// lengthRatioBreak and lengthRatioMinShort tune the different-roles signal.
	lengthRatioBreak    = 3
	lengthRatioMinShort = 5
)

// headingPunct disqualifies a heading; terminalPunct ends a line.
const (
	headingPunct  = ":：.。,，?？!！"
	terminalPunct = ".!?:。！？："
)

// listBullets are the glyphs accepted as a leading bullet.
const listBullets = `-*•◦▪▫○●‣∙■□➢➤✓`

var listPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)^\s*[` + regexp.QuoteMeta(listBullets) + `]\s+(.*)$`),
	regexp.MustCompile(`(?s)^\s*\d+[.)]\s+(.*)$`),
	regexp.MustCompile(`(?s)^\s*[a-zA-Z][.)]\s+(.*)$`),
}

// Heuristic is the default Classifier.
type Heuristic struct {
	markers []string
}

// NewHeuristic returns a classifier using the given discourse markers.
// Markers are matched case-insensitively as prefixes; a marker ending in an
// ASCII letter must also end at a word boundary, so "but" does not match
// "Butterfly".
func NewHeuristic(markers ...string) *Heuristic {
	h := &Heuristic{markers: make([]string, 0, len(markers))}
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			h.markers = append(h.markers, m)
		}
	}
	return h
}

// DefaultClassifier uses the English and Chinese marker lists plus extra.
func DefaultClassifier(extra ...string) *Heuristic {
	markers := make([]string, 0, len(EnglishMarkers)+len(ChineseMarkers)+len(extra))
	markers = append(markers, EnglishMarkers...)
	markers = append(markers, ChineseMarkers...)
	markers = append(markers, extra...)
	return NewHeuristic(markers...)
}

// Classify implements Classifier. A run carrying a list marker is a list
// item even when it would also satisfy the heading rule.
func (h *Heuristic) Classify(run string) Kind {
	if h.isListItem(run) {
		return ListItem
	}
	if h.isHeading(run) {
		return Heading
	}
	return Plain
}

// StripListMarker implements Classifier. The bullet, number and letter
// patterns are applied in turn, so "• 1. Revenue" loses both markers.
func (h *Heuristic) StripListMarker(run string) string {
	for _, re := range listPatterns {
		if m := re.FindStringSubmatch(run); m != nil {
			run = strings.TrimSpace(m[1])
		}
	}
	return run
}

// BreakBetween implements Classifier.
func (h *Heuristic) BreakBetween(prev, next string) bool {
	if last, _ := utf8.DecodeLastRuneInString(prev); strings.ContainsRune(terminalPunct, last) {
		return true
	}
	if h.startsWithMarker(next) {
		return true
	}

	a, b := utf8.RuneCountInString(prev), utf8.RuneCountInString(next)
	longer, shorter := max(a, b), min(a, b)
	return shorter > lengthRatioMinShort && longer > lengthRatioBreak*shorter
}

func (h *Heuristic) isHeading(run string) bool {
	n := utf8.RuneCountInString(run)
	if n < headingMinLen || n > headingMaxLen {
		return false
	}
	if strings.ContainsAny(run, headingPunct) {
		return false
	}
	return !h.startsWithMarker(run)
}

func (h *Heuristic) isListItem(run string) bool {
	for _, re := range listPatterns {
		if re.MatchString(run) {
			return true
		}
	}
	return false
}

func (h *Heuristic) startsWithMarker(run string) bool {
	lower := strings.ToLower(run)
	for _, m := range h.markers {
		if !strings.HasPrefix(lower, m) {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(m)
		if last >= utf8.RuneSelf || !unicode.IsLetter(last) {
			return true
		}
		next, size := utf8.DecodeRuneInString(lower[len(m):])
		if size == 0 || !(unicode.IsLetter(next) || unicode.IsDigit(next)) {
			return true
		}
	}
	return false
}
