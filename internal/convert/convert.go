// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a selected range of presentation slides into
// Markdown documents, either merged into one file or written one file per
// slide, and reports a per-slide outcome for every requested slide.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/slidemd/internal/pptx"
	"github.com/pdiddy/slidemd/internal/structure"
	"github.com/pdiddy/slidemd/pkg/types"
)

const (
	extPPTX = ".pptx"
	extPPT  = ".ppt"

	defaultWorkers = 4
)

// Options configures a conversion. Zero values fall back to defaults.
type Options struct {
	Config types.ConversionConfig

	// OutputDir overrides the directory outputs are written to (default:
	// the input file's directory).
	OutputDir string

	// Classifier replaces the default structuring heuristics.
	Classifier structure.Classifier

	// InfoBlock replaces the default Markdown header.
	InfoBlock InfoBlock
}

func (o *Options) defaults() {
	if o.Config.Workers <= 0 {
		o.Config.Workers = defaultWorkers
	}
	if o.InfoBlock == nil {
		o.InfoBlock = MarkdownInfoBlock{Config: o.Config.Markdown}
	}
}

// session is one opened presentation with a resolved selection.
type session struct {
	inputPath string
	base      string
	fileName  string
	stat      os.FileInfo
	pkg       *pptx.Package
	inv       *pptx.Inventory
	props     pptx.Properties
	selection types.SlideSelection
	engine    *structure.Engine
	opts      Options
}

// ConvertSlides runs the full pipeline for inputPath: validate and open the
// package, ask sel for slides, extract and structure each requested slide,
// write the output and aggregate the outcomes. Progress lines are written
// to w. Failures are reported in the returned result, never as panics.
func ConvertSlides(ctx context.Context, inputPath string, sel Selector, opts Options, w io.Writer) types.AggregateResult {
	opts.defaults()

	s, total, err := openSession(ctx, inputPath, sel, opts)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(inputPath), err)
		return failedResult(err, total)
	}
	defer s.pkg.Close()

	contents := s.extract()

	var result types.AggregateResult
	if s.selection.Mode == types.ModeSeparate {
		result = s.writeSeparate(contents)
	} else {
		result = s.writeMerged(contents)
	}
	result.TotalSlides = s.inv.Total()
	result.SlideNumbers = s.selection.Numbers

	printOutcomes(w, result)
	return result
}

// RenderMerged assembles the merged document for the selected slides
// without writing it. The result carries the per-slide outcomes; its
// OutputPath is empty.
func RenderMerged(ctx context.Context, inputPath string, sel Selector, opts Options) (string, types.AggregateResult) {
	opts.defaults()

	s, total, err := openSession(ctx, inputPath, sel, opts)
	if err != nil {
		return "", failedResult(err, total)
	}
	defer s.pkg.Close()

	s.selection.Mode = types.ModeMerge
	doc, outcomes := s.renderMerged(s.extract())
	return doc, aggregate(outcomes, s.inv.Total(), s.selection.Numbers)
}

// openPackage validates inputPath and opens it as a presentation holding at
// least one slide. The caller closes the package.
func openPackage(inputPath string) (os.FileInfo, *pptx.Package, *pptx.Inventory, error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, ErrFileNotFound)
		}
		return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	if stat.IsDir() {
		return nil, nil, nil, fmt.Errorf("%s is a directory: %w", inputPath, ErrUnsupportedFormat)
	}

	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case extPPTX:
	case extPPT:
		return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, ErrLegacyFormat)
	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	pkg, err := pptx.Open(inputPath)
	if err != nil {
		if errors.Is(err, pptx.ErrLegacyBinary) {
			return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, ErrLegacyFormat)
		}
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	inv, err := pkg.Inventory()
	if err != nil {
		pkg.Close()
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if inv.Total() == 0 {
		pkg.Close()
		return nil, nil, nil, fmt.Errorf("%s: %w", inputPath, ErrEmptyDocument)
	}
	return stat, pkg, inv, nil
}

// openSession performs every check that must pass before extraction. It
// returns the slide count whenever the package could be inventoried.
func openSession(ctx context.Context, inputPath string, sel Selector, opts Options) (*session, int, error) {
	stat, pkg, inv, err := openPackage(inputPath)
	if err != nil {
		return nil, 0, err
	}

	fileName := filepath.Base(inputPath)
	selection, err := sel.Select(ctx, inv.Total(), fileName, inv.TitleHints())
	if err != nil {
		pkg.Close()
		return nil, inv.Total(), err
	}
	if selection.Cancelled {
		pkg.Close()
		return nil, inv.Total(), ErrUserCancelled
	}
	if err := ctx.Err(); err != nil {
		pkg.Close()
		return nil, inv.Total(), fmt.Errorf("%w: %v", ErrUserCancelled, err)
	}

	if selection.Mode == "" {
		selection.Mode = opts.Config.Mode
	}
	if selection.Mode == "" {
		selection.Mode = types.ModeMerge
	}
	if !selection.Mode.Valid() {
		pkg.Close()
		return nil, inv.Total(), fmt.Errorf("%w: unknown output mode %q", ErrInvalidSelection, selection.Mode)
	}

	if opts.Classifier == nil {
		opts.Classifier = structure.DefaultClassifier(opts.Config.ExtraMarkers...)
	}

	return &session{
		inputPath: inputPath,
		base:      strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		fileName:  fileName,
		stat:      stat,
		pkg:       pkg,
		inv:       inv,
		props:     pkg.Properties(),
		selection: selection,
		engine:    structure.New(opts.Classifier),
		opts:      opts,
	}, inv.Total(), nil
}

// outputDir is where outputs are written.
func (s *session) outputDir() string {
	if s.opts.OutputDir != "" {
		return s.opts.OutputDir
	}
	return filepath.Dir(s.inputPath)
}

// MergedOutputPath returns the merge-mode output file for inputPath.
func MergedOutputPath(dir, inputPath string, numbers []int) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, fmt.Sprintf("%s_slides-%s.md", base, rangeFileLabel(numbers)))
}

// SeparateOutputDir returns the separate-mode output directory for inputPath.
func SeparateOutputDir(dir, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, base+"_Slides")
}

// SlideFileName returns the separate-mode file name for one slide.
func SlideFileName(inputPath string, slide int) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return fmt.Sprintf("%s_slide-%d.md", base, slide)
}

func failedResult(err error, total int) types.AggregateResult {
	return types.AggregateResult{
		Success:     false,
		TotalSlides: total,
		Error:       err.Error(),
		Err:         err,
	}
}

// aggregate rolls outcomes into a result: success iff any slide succeeded.
func aggregate(outcomes []types.SlideOutcome, total int, numbers []int) types.AggregateResult {
	r := types.AggregateResult{
		TotalSlides:  total,
		SlideNumbers: numbers,
		Outcomes:     outcomes,
	}
	for _, o := range outcomes {
		if o.Success {
			r.Success = true
			break
		}
	}
	return r
}

func printOutcomes(w io.Writer, r types.AggregateResult) {
	for _, o := range r.Outcomes {
		if o.Success {
			if o.Title != "" {
				fmt.Fprintf(w, "converted: slide %d - %s\n", o.SlideNumber, o.Title)
			} else {
				fmt.Fprintf(w, "converted: slide %d\n", o.SlideNumber)
			}
			continue
		}
		fmt.Fprintf(w, "failed:  slide %d (%s)\n", o.SlideNumber, o.Error)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "failed:  %s\n", r.Error)
	}
	fmt.Fprintf(w, "\nSlide summary: %d converted, %d failed (total: %d)\n",
		r.Succeeded(), r.Failed(), len(r.Outcomes))
}
