// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidemd/pkg/types"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	res := types.AggregateResult{
		Success:      true,
		OutputPath:   "out/deck_slides-1.md",
		TotalSlides:  3,
		SlideNumbers: []int{1, 5},
		Outcomes: []types.SlideOutcome{
			{SlideNumber: 1, Title: "Intro Slide", Success: true},
			{SlideNumber: 5, Error: "slide 5 not found (presentation has 3 slides)"},
		},
	}
	require.NoError(t, WriteReport(path, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, "success: true")
	assert.Contains(t, report, "output_path: out/deck_slides-1.md")
	assert.Contains(t, report, "slide_number: 5")
	assert.Contains(t, report, "error: slide 5 not found (presentation has 3 slides)")
}

func TestFormatDetails(t *testing.T) {
	res := types.AggregateResult{
		Success:         true,
		OutputDirectory: "out/deck_Slides",
		Outcomes: []types.SlideOutcome{
			{SlideNumber: 1, Title: "Intro Slide", Success: true},
			{SlideNumber: 2, Success: true},
			{SlideNumber: 9, Error: "slide 9 not found (presentation has 2 slides)"},
		},
	}
	got := FormatDetails(res)

	assert.Contains(t, got, "**Converted** (2):\n- Slide 1: Intro Slide\n- Slide 2\n")
	assert.Contains(t, got, "**Failed** (1):\n- Slide 9: slide 9 not found (presentation has 2 slides)\n")
	assert.Contains(t, got, "**Output directory**: out/deck_Slides")
	assert.NotContains(t, got, "**Error**")
}
