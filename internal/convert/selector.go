// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/slidemd/pkg/types"
)

// Selector chooses which slides to convert. It receives the slide count, the
// document display name and one title hint per slide (empty when none).
// Returning a selection with Cancelled set stops the conversion before any
// slide is read.
type Selector interface {
	Select(ctx context.Context, totalSlides int, documentName string, titleHints []string) (types.SlideSelection, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(ctx context.Context, totalSlides int, documentName string, titleHints []string) (types.SlideSelection, error)

// Select implements Selector.
func (f SelectorFunc) Select(ctx context.Context, totalSlides int, documentName string, titleHints []string) (types.SlideSelection, error) {
	return f(ctx, totalSlides, documentName, titleHints)
}

// StaticSelector selects a fixed set of slides, given either as explicit
// numbers or as a range expression such as "1-3, 5" or "all". An empty
// selector reports cancellation.
type StaticSelector struct {
	Numbers []int
	Range   string
	Mode    types.OutputMode
}

// Select implements Selector.
func (s StaticSelector) Select(_ context.Context, totalSlides int, _ string, _ []string) (types.SlideSelection, error) {
	numbers := slices.Clone(s.Numbers)
	if len(numbers) == 0 && strings.TrimSpace(s.Range) != "" {
		parsed, err := ParseRange(s.Range, totalSlides)
		if err != nil {
			return types.SlideSelection{}, err
		}
		numbers = parsed
	}
	if len(numbers) == 0 {
		return types.SlideSelection{Cancelled: true}, nil
	}
	return types.SlideSelection{Numbers: numbers, Mode: s.Mode}, nil
}

// ParseRange parses a comma-separated list of slide numbers and inclusive
// ranges ("2, 4-6"). The keyword "all" expands to 1..totalSlides. Order is
// kept as written and duplicates are not removed. Single numbers are not
// checked against totalSlides; a range must lie within 1..totalSlides.
func ParseRange(input string, totalSlides int) ([]int, error) {
	var numbers []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.EqualFold(part, "all") {
			for n := 1; n <= totalSlides; n++ {
				numbers = append(numbers, n)
			}
			continue
		}

		startStr, endStr, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, part)
			}
			numbers = append(numbers, n)
			continue
		}

		start, err1 := strconv.Atoi(strings.TrimSpace(startStr))
		end, err2 := strconv.Atoi(strings.TrimSpace(endStr))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q is not a range", ErrInvalidSelection, part)
		}
		if start > end {
			return nil, fmt.Errorf("%w: range %q ends before it starts", ErrInvalidSelection, part)
		}
		if start < 1 || end > totalSlides {
			return nil, fmt.Errorf("%w: range %q is outside 1-%d", ErrInvalidSelection, part, totalSlides)
		}
		for n := start; n <= end; n++ {
			numbers = append(numbers, n)
		}
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: no slides in %q", ErrInvalidSelection, input)
	}
	return numbers, nil
}

// FormatRange renders numbers sorted and deduplicated, collapsing runs of
// consecutive numbers: [5 1 2 3] becomes "1-3, 5".
func FormatRange(numbers []int) string {
	if len(numbers) == 0 {
		return ""
	}
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var parts []string
	start, end := sorted[0], sorted[0]
	emit := func() {
		if start == end {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, end))
		}
	}
	for _, n := range sorted[1:] {
		if n == end+1 {
			end = n
			continue
		}
		emit()
		start, end = n, n
	}
	emit()

	return strings.Join(parts, ", ")
}

var (
	unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	listSeparator   = regexp.MustCompile(`,\s*`)
)

// rangeFileLabel makes a FormatRange string safe for use in a file name.
func rangeFileLabel(numbers []int) string {
	label := unsafeFileChars.ReplaceAllString(FormatRange(numbers), "_")
	return listSeparator.ReplaceAllString(label, "-")
}
