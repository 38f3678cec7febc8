// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"

	"github.com/pdiddy/slidemd/internal/pptx"
	"github.com/pdiddy/slidemd/pkg/types"
)

// Inspection is what a slide-selection prompt needs to know about a
// presentation, plus diagnostics about its notes layout.
type Inspection struct {
	FileName    string                  `json:"file_name" yaml:"file_name"`
	TotalSlides int                     `json:"total_slides" yaml:"total_slides"`
	NotesParts  int                     `json:"notes_parts" yaml:"notes_parts"`
	Slides      []types.SlideDescriptor `json:"slides" yaml:"slides"`
	Properties  pptx.Properties         `json:"properties" yaml:"properties"`

	// NotesMismatch lists slides whose declared notes part differs from the
	// positionally associated one.
	NotesMismatch []int `json:"notes_mismatch,omitempty" yaml:"notes_mismatch,omitempty"`
}

// Inspect opens inputPath with the same checks as ConvertSlides and reports
// its slide inventory without extracting any slide.
func Inspect(inputPath string) (Inspection, error) {
	_, pkg, inv, err := openPackage(inputPath)
	if err != nil {
		return Inspection{}, err
	}
	defer pkg.Close()

	return Inspection{
		FileName:      filepath.Base(inputPath),
		TotalSlides:   inv.Total(),
		NotesParts:    len(inv.NotesParts),
		Slides:        inv.Slides,
		Properties:    pkg.Properties(),
		NotesMismatch: pkg.NotesMismatch(inv),
	}, nil
}
