// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/slidemd/pkg/types"
)

// BatchResult summarizes the outcome of converting several presentations.
type BatchResult struct {
	Converted int
	Partial   int
	Failed    int
	Results   []types.AggregateResult
}

// Total returns the number of presentations processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Partial + r.Failed
}

// HasFailures reports whether any presentation or slide failed.
func (r BatchResult) HasFailures() bool {
	return r.Partial > 0 || r.Failed > 0
}

// ConvertBatch runs ConvertSlides for each input with the same selector and
// options. Presentations are processed one at a time; a failed file does not
// stop the batch. Cancelling ctx skips the remaining files.
func ConvertBatch(ctx context.Context, inputs []string, sel Selector, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprintf(w, "== %s\n", in)
		r := ConvertSlides(ctx, in, sel, opts, w)
		result.Results = append(result.Results, r)
		switch {
		case !r.Success:
			result.Failed++
		case r.HasFailures():
			result.Partial++
		default:
			result.Converted++
		}
	}
	if len(inputs) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d converted, %d partial, %d failed (total: %d)\n",
			result.Converted, result.Partial, result.Failed, result.Total())
	}
	return result
}
