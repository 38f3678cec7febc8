// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputMode selects how selected slides are written.
type OutputMode string

const (
	// ModeMerge writes all selected slides into one Markdown document.
	ModeMerge OutputMode = "merge"
	// ModeSeparate writes one Markdown document per selected slide.
	ModeSeparate OutputMode = "separate"
)

// Valid reports whether m is a known output mode.
func (m OutputMode) Valid() bool {
	return m == ModeMerge || m == ModeSeparate
}

// SlideDescriptor identifies one slide of an opened presentation.
type SlideDescriptor struct {
	// Index is the 1-based position of the slide after numeric sorting of
	// slide part names. Indices are dense: 1..TotalSlides.
	Index int `json:"index" yaml:"index"`

	// TitleHint is the first text run that looks like a title, if any.
	TitleHint string `json:"title_hint,omitempty" yaml:"title_hint,omitempty"`

	// PartName is the archive entry holding the slide markup
	// (e.g. "ppt/slides/slide3.xml").
	PartName string `json:"part_name" yaml:"part_name"`

	// NotesPartName is the positionally associated notes part, if any.
	NotesPartName string `json:"notes_part_name,omitempty" yaml:"notes_part_name,omitempty"`
}

// SlideSelection is the set of slides requested by the range selector.
// Numbers are 1-based, kept in requested order and never deduplicated.
type SlideSelection struct {
	Numbers   []int      `json:"numbers" yaml:"numbers"`
	Mode      OutputMode `json:"mode" yaml:"mode"`
	Cancelled bool       `json:"cancelled,omitempty" yaml:"cancelled,omitempty"`
}

// SlideOutcome records the result of converting one requested slide.
type SlideOutcome struct {
	SlideNumber int    `json:"slide_number" yaml:"slide_number"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Success     bool   `json:"success" yaml:"success"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AggregateResult is the outcome of one slide-range conversion.
type AggregateResult struct {
	// Success is true when at least one requested slide was converted.
	Success bool `json:"success" yaml:"success"`

	// OutputPath is the written document in merge mode.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// OutputDirectory is the directory holding per-slide documents in separate mode.
	OutputDirectory string `json:"output_directory,omitempty" yaml:"output_directory,omitempty"`

	TotalSlides  int            `json:"total_slides" yaml:"total_slides"`
	SlideNumbers []int          `json:"slide_numbers,omitempty" yaml:"slide_numbers,omitempty"`
	Outcomes     []SlideOutcome `json:"outcomes" yaml:"outcomes"`

	// Error describes a top-level failure (file not found, unsupported
	// format, empty document, cancellation, merged output write failure).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Err is the wrapped error behind Error, for errors.Is checks.
	Err error `json:"-" yaml:"-"`
}

// Succeeded returns the number of successful slide outcomes.
func (r AggregateResult) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Success {
			n++
		}
	}
	return n
}

// Failed returns the number of failed slide outcomes.
func (r AggregateResult) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// HasFailures reports whether any requested slide failed.
func (r AggregateResult) HasFailures() bool {
	return r.Failed() > 0
}
