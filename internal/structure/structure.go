// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure recovers headings, lists and paragraphs from the flat
// sequence of text runs extracted from one slide or notes part.
package structure

import "strings"

// BlockKind tags a rendered block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockList
)

// Block is one rendered unit of structured output.
type Block struct {
	Kind BlockKind
	Text string
}

const (
	headingPrefix = "## "
	listPrefix    = "- "
	blockSep      = "\n\n"
)

// Engine groups runs into blocks using a Classifier. It holds no state
// between calls and is safe for concurrent use when its Classifier is.
type Engine struct {
	c Classifier
}

// New returns an Engine using c, or the default heuristics when c is nil.
func New(c Classifier) *Engine {
	if c == nil {
		c = DefaultClassifier()
	}
	return &Engine{c: c}
}

// group accumulates consecutive list and plain lines between flushes.
type group struct {
	lines []string
}

func (g *group) empty() bool { return len(g.lines) == 0 }

func (g *group) last() string { return g.lines[len(g.lines)-1] }

func (g *group) lastIsList() bool {
	return !g.empty() && strings.HasPrefix(g.last(), listPrefix)
}

// Structure classifies runs and regroups them in a single pass.
func (e *Engine) Structure(runs []string) []Block {
	var blocks []Block
	var g group

	flush := func() {
		if g.empty() {
			return
		}
		text := strings.TrimSpace(strings.Join(g.lines, "\n"))
		if text != "" {
			kind := BlockList
			for _, l := range g.lines {
				if !strings.HasPrefix(l, listPrefix) {
					kind = BlockParagraph
					break
				}
			}
			blocks = append(blocks, Block{Kind: kind, Text: text})
		}
		g.lines = nil
	}

	for _, run := range runs {
		switch e.c.Classify(run) {
		case Heading:
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Text: run})

		case ListItem:
			if !g.empty() && !g.lastIsList() {
				flush()
			}
			g.lines = append(g.lines, listPrefix+e.c.StripListMarker(run))

		default:
			switch {
			case g.empty():
				g.lines = append(g.lines, run)
			case e.c.BreakBetween(g.last(), run):
				g.lines = append(g.lines, run)
			default:
				g.lines[len(g.lines)-1] += " " + run
			}
		}
	}
	flush()

	return blocks
}

// Render joins blocks with blank lines, prefixing headings with a
// sub-heading marker.
func Render(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		if b.Kind == BlockHeading {
			parts[i] = headingPrefix + b.Text
		} else {
			parts[i] = b.Text
		}
	}
	return strings.Join(parts, blockSep)
}

// Text is Render(Structure(runs)).
func (e *Engine) Text(runs []string) string {
	return Render(e.Structure(runs))
}
