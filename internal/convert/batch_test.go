// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidemd/internal/pptx/pptxtest"
)

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	full := pptxtest.Write(t, dir, "full.pptx", fourSlides())
	short := pptxtest.Write(t, dir, "short.pptx", pptxtest.Deck{
		Slides: []pptxtest.Slide{{Runs: []string{"Lonely Slide Title"}}},
	})
	missing := filepath.Join(dir, "missing.pptx")

	var log bytes.Buffer
	res := ConvertBatch(context.Background(), []string{full, short, missing},
		StaticSelector{Numbers: []int{1, 2}}, defaultOptions(dir), &log)

	require.Len(t, res.Results, 3)
	assert.Equal(t, 1, res.Converted)
	assert.Equal(t, 1, res.Partial)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 3, res.Total())
	assert.True(t, res.HasFailures())
	assert.Contains(t, log.String(), "Batch summary: 1 converted, 1 partial, 1 failed (total: 3)")
}

func TestConvertBatch_Cancelled(t *testing.T) {
	dir := t.TempDir()
	input := pptxtest.Write(t, dir, "deck.pptx", fourSlides())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ConvertBatch(ctx, []string{input, input}, StaticSelector{Numbers: []int{1}}, defaultOptions(dir), &bytes.Buffer{})
	assert.Zero(t, res.Total())
	assert.False(t, res.HasFailures())
}
