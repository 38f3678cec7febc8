// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/slidemd/internal/pptx"
	"github.com/pdiddy/slidemd/pkg/types"
)

const (
	emptySlideMarker = "*Empty slide*\n"
	sectionRule      = "\n\n---\n\n"
)

// slideContent is the structured text of one requested slide, or the error
// that prevented producing it.
type slideContent struct {
	number int
	title  string
	body   string
	notes  string
	err    error
}

// extract structures every requested slide. In-range slides are processed
// concurrently (bounded by Config.Workers) against the shared read-only
// package; results are indexed by request position so assembly order never
// depends on completion order.
func (s *session) extract() []slideContent {
	numbers := s.selection.Numbers
	contents := make([]slideContent, len(numbers))

	var g errgroup.Group
	g.SetLimit(s.opts.Config.Workers)

	for i, n := range numbers {
		desc, ok := s.inv.Slide(n)
		if !ok {
			contents[i] = slideContent{number: n, err: &slideRangeError{slide: n, total: s.inv.Total()}}
			continue
		}
		i, desc := i, desc
		g.Go(func() error {
			contents[i] = s.extractSlide(desc)
			return nil
		})
	}
	_ = g.Wait()

	return contents
}

// extractSlide reads and structures one slide and its notes. A panic in the
// structuring heuristics is turned into that slide's error.
func (s *session) extractSlide(desc types.SlideDescriptor) (c slideContent) {
	c.number = desc.Index
	defer func() {
		if r := recover(); r != nil {
			c = slideContent{number: desc.Index, err: fmt.Errorf("%w: slide %d: %v", ErrSlideExtraction, desc.Index, r)}
		}
	}()

	data, err := s.pkg.ReadPart(desc.PartName)
	if err != nil {
		return slideContent{number: desc.Index, err: fmt.Errorf("%w: slide %d: %v", ErrSlideExtraction, desc.Index, err)}
	}
	runs := pptx.ExtractRuns(data)
	c.title = pptx.TitleHint(runs)
	c.body = s.engine.Text(runs)

	if desc.NotesPartName != "" {
		notes, err := s.pkg.ReadPart(desc.NotesPartName)
		if err != nil {
			return slideContent{number: desc.Index, err: fmt.Errorf("%w: notes for slide %d: %v", ErrSlideExtraction, desc.Index, err)}
		}
		c.notes = s.engine.Text(pptx.ExtractRuns(notes))
	}
	return c
}

// writeSection appends the sub-heading, body and speaker notes of one slide.
func writeSection(b *strings.Builder, c slideContent) {
	fmt.Fprintf(b, "### Slide %d", c.number)
	if c.title != "" {
		fmt.Fprintf(b, " - %s", c.title)
	}
	b.WriteString("\n\n")

	if strings.TrimSpace(c.body) == "" {
		b.WriteString(emptySlideMarker)
	} else {
		b.WriteString(c.body)
	}

	if strings.TrimSpace(c.notes) != "" {
		b.WriteString("\n\n#### Speaker Notes\n\n")
		b.WriteString(c.notes)
	}
}

func (s *session) docInfo(title string, slides []int) DocumentInfo {
	return DocumentInfo{
		Title:       title,
		FileName:    s.fileName,
		Size:        s.stat.Size(),
		Modified:    s.stat.ModTime(),
		Properties:  s.props,
		Slides:      slides,
		TotalSlides: s.inv.Total(),
		Mode:        s.selection.Mode,
	}
}

func outcomeOf(c slideContent) types.SlideOutcome {
	if c.err != nil {
		return types.SlideOutcome{SlideNumber: c.number, Success: false, Error: c.err.Error()}
	}
	return types.SlideOutcome{SlideNumber: c.number, Title: c.title, Success: true}
}

// renderMerged builds the single merged document in requested order.
func (s *session) renderMerged(contents []slideContent) (string, []types.SlideOutcome) {
	numbers := s.selection.Numbers
	outcomes := make([]types.SlideOutcome, 0, len(contents))

	var b strings.Builder
	b.WriteString(s.opts.InfoBlock.Header(s.docInfo(s.base, numbers)))
	fmt.Fprintf(&b, "**Selected Slides**: %s\n\n---\n\n", FormatRange(numbers))

	for _, c := range contents {
		outcomes = append(outcomes, outcomeOf(c))
		if c.err != nil {
			continue
		}
		writeSection(&b, c)
		b.WriteString(sectionRule)
	}
	return b.String(), outcomes
}

// writeMerged writes the merged document once it is fully assembled. A
// write failure fails the whole conversion.
func (s *session) writeMerged(contents []slideContent) types.AggregateResult {
	doc, outcomes := s.renderMerged(contents)
	path := MergedOutputPath(s.outputDir(), s.inputPath, s.selection.Numbers)

	result := aggregate(outcomes, s.inv.Total(), s.selection.Numbers)
	result.OutputPath = path

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err == nil {
		err = os.WriteFile(path, []byte(doc), 0o644)
	}
	if err != nil {
		werr := fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
		result.Success = false
		result.Error = werr.Error()
		result.Err = werr
	}
	return result
}

// writeSeparate writes one document per in-range slide as soon as it is
// rendered. A failed write only fails that slide.
func (s *session) writeSeparate(contents []slideContent) types.AggregateResult {
	dir := SeparateOutputDir(s.outputDir(), s.inputPath)
	mkErr := os.MkdirAll(dir, 0o755)

	outcomes := make([]types.SlideOutcome, 0, len(contents))
	for _, c := range contents {
		if c.err == nil {
			c.err = s.writeSlideFile(dir, c, mkErr)
		}
		outcomes = append(outcomes, outcomeOf(c))
	}

	result := aggregate(outcomes, s.inv.Total(), s.selection.Numbers)
	result.OutputDirectory = dir
	return result
}

func (s *session) writeSlideFile(dir string, c slideContent, mkErr error) error {
	path := filepath.Join(dir, SlideFileName(s.inputPath, c.number))
	if mkErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, mkErr)
	}

	var b strings.Builder
	b.WriteString(s.opts.InfoBlock.Header(s.docInfo(fmt.Sprintf("%s - Slide %d", s.base, c.number), []int{c.number})))
	writeSection(&b, c)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
