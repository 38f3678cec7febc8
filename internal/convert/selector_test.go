// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidemd/pkg/types"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input   string
		total   int
		want    []int
		wantErr bool
	}{
		{input: "3", total: 5, want: []int{3}},
		{input: "1-3", total: 5, want: []int{1, 2, 3}},
		{input: "5, 1-2", total: 5, want: []int{5, 1, 2}},
		{input: " 2 , 2 ", total: 5, want: []int{2, 2}},
		{input: "all", total: 3, want: []int{1, 2, 3}},
		{input: "ALL, 1", total: 2, want: []int{1, 2, 1}},
		{input: "9", total: 3, want: []int{9}},
		{input: "1,,2", total: 3, want: []int{1, 2}},
		{input: "", total: 3, wantErr: true},
		{input: "x", total: 3, wantErr: true},
		{input: "3-1", total: 3, wantErr: true},
		{input: "1-b", total: 3, wantErr: true},
		{input: "1-30000000", total: 1, wantErr: true},
		{input: "2-4", total: 3, wantErr: true},
		{input: "0-2", total: 3, wantErr: true},
		{input: "4, 1-3", total: 3, want: []int{4, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRange(tt.input, tt.total)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    string
	}{
		{"empty", nil, ""},
		{"single", []int{4}, "4"},
		{"run", []int{1, 2, 3}, "1-3"},
		{"mixed", []int{5, 1, 2, 3}, "1-3, 5"},
		{"gaps", []int{2, 4}, "2, 4"},
		{"duplicates", []int{2, 2, 3}, "2-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRange(tt.numbers))
		})
	}
}

func TestRangeFileLabel(t *testing.T) {
	assert.Equal(t, "1-3-5", rangeFileLabel([]int{1, 2, 3, 5}))
	assert.Equal(t, "2-4", rangeFileLabel([]int{4, 2}))
}

func TestStaticSelector(t *testing.T) {
	ctx := context.Background()

	sel, err := StaticSelector{Numbers: []int{3, 1}, Mode: types.ModeSeparate}.Select(ctx, 5, "deck.pptx", nil)
	require.NoError(t, err)
	assert.Equal(t, types.SlideSelection{Numbers: []int{3, 1}, Mode: types.ModeSeparate}, sel)

	sel, err = StaticSelector{Range: "all"}.Select(ctx, 2, "deck.pptx", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sel.Numbers)

	sel, err = StaticSelector{}.Select(ctx, 2, "deck.pptx", nil)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled)

	_, err = StaticSelector{Range: "oops"}.Select(ctx, 2, "deck.pptx", nil)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
