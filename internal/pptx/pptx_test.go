// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidemd/internal/pptx/pptxtest"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		wantErr error
	}{
		{
			name: "valid package",
			setup: func(t *testing.T, dir string) string {
				return pptxtest.Write(t, dir, "deck.pptx", pptxtest.Deck{
					Slides: []pptxtest.Slide{{Runs: []string{"Hello"}}},
				})
			},
		},
		{
			name: "plain text is not a package",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "notes.pptx")
				require.NoError(t, os.WriteFile(p, []byte("just text"), 0o644))
				return p
			},
			wantErr: ErrNotPackage,
		},
		{
			name: "zip without presentation part",
			setup: func(t *testing.T, dir string) string {
				return pptxtest.Write(t, dir, "other.pptx", pptxtest.Deck{OmitPresentation: true})
			},
			wantErr: ErrNotPackage,
		},
		{
			name: "OLE2 compound file",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "old.pptx")
				data := append([]byte{}, oleSignature...)
				data = append(data, make([]byte, 504)...)
				require.NoError(t, os.WriteFile(p, data, 0o644))
				return p
			},
			wantErr: ErrLegacyBinary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t, t.TempDir())
			p, err := Open(path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer p.Close()
			assert.Equal(t, path, p.Path())
			assert.True(t, p.HasPart("ppt/presentation.xml"))
		})
	}
}

func TestReadPartMissing(t *testing.T) {
	path := pptxtest.Write(t, t.TempDir(), "deck.pptx", pptxtest.Deck{})
	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.ReadPart("ppt/slides/slide1.xml")
	assert.ErrorIs(t, err, ErrPartNotFound)
}

func TestInventoryNumericOrder(t *testing.T) {
	// Part names 1..10 written in reverse so archive order is no help either.
	var slides []pptxtest.Slide
	for n := 10; n >= 1; n-- {
		slides = append(slides, pptxtest.Slide{
			Index: n,
			Runs:  []string{fmt.Sprintf("Slide title %d", n)},
			Notes: []string{fmt.Sprintf("note %d", n)},
		})
	}
	path := pptxtest.Write(t, t.TempDir(), "deck.pptx", pptxtest.Deck{Slides: slides})

	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	inv, err := p.Inventory()
	require.NoError(t, err)
	require.Equal(t, 10, inv.Total())

	for i, s := range inv.Slides {
		n := i + 1
		assert.Equal(t, n, s.Index)
		assert.Equal(t, fmt.Sprintf("ppt/slides/slide%d.xml", n), s.PartName)
		assert.Equal(t, fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), s.NotesPartName)
		assert.Equal(t, fmt.Sprintf("Slide title %d", n), s.TitleHint)
	}
	assert.Empty(t, p.NotesMismatch(inv))
}

func TestInventorySlide(t *testing.T) {
	path := pptxtest.Write(t, t.TempDir(), "deck.pptx", pptxtest.Deck{
		Slides: []pptxtest.Slide{{Runs: []string{"Hi", "Opening remarks"}}, {}},
	})
	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	inv, err := p.Inventory()
	require.NoError(t, err)

	for _, n := range []int{0, -1, 3} {
		_, ok := inv.Slide(n)
		assert.False(t, ok, "slide %d should be out of range", n)
	}
	s, ok := inv.Slide(1)
	require.True(t, ok)
	assert.Equal(t, "Opening remarks", s.TitleHint)
	assert.Equal(t, []string{"Opening remarks", ""}, inv.TitleHints())
	assert.Empty(t, inv.NotesParts)
}

func TestNotesMismatch(t *testing.T) {
	path := pptxtest.Write(t, t.TempDir(), "deck.pptx", pptxtest.Deck{
		Slides: []pptxtest.Slide{
			{Runs: []string{"First"}},
			{Runs: []string{"Second"}, Notes: []string{"for slide two"}},
		},
	})
	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	inv, err := p.Inventory()
	require.NoError(t, err)

	// The only notes part is positionally given to slide 1 but declared by slide 2.
	assert.Equal(t, "ppt/notesSlides/notesSlide2.xml", inv.Slides[0].NotesPartName)
	assert.Empty(t, inv.Slides[1].NotesPartName)
	assert.Equal(t, []int{2}, p.NotesMismatch(inv))
}

func TestTitleHint(t *testing.T) {
	tests := []struct {
		name string
		runs []string
		want string
	}{
		{name: "first qualifying run", runs: []string{"Go", "Agenda", "Roadmap"}, want: "Agenda"},
		{name: "four characters is enough", runs: []string{"Plan"}, want: "Plan"},
		{name: "three characters is too short", runs: []string{"Q&A"}, want: ""},
		{name: "line break disqualifies", runs: []string{"two\nlines", "Summary"}, want: "Summary"},
		{name: "100 characters is too long", runs: []string{string(make([]rune, 100))}, want: ""},
		{name: "no runs", runs: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleHint(tt.runs))
		})
	}
}

func TestExtractRuns(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{
			name:   "ordered runs with attributes",
			markup: `<a:p><a:r><a:t xml:space="preserve">  One </a:t></a:r><a:r><a:t>Two</a:t></a:r></a:p>`,
			want:   []string{"One", "Two"},
		},
		{
			name:   "entities decoded",
			markup: `<a:t>R&amp;D &lt;core&gt; &quot;q&quot; &apos;s&apos;</a:t>`,
			want:   []string{`R&D <core> "q" 's'`},
		},
		{
			name:   "double-escaped stays single-decoded",
			markup: `<a:t>&amp;lt;</a:t>`,
			want:   []string{"&lt;"},
		},
		{
			name:   "blank runs dropped",
			markup: `<a:t>   </a:t><a:t></a:t><a:t>x</a:t>`,
			want:   []string{"x"},
		},
		{
			name:   "malformed markup keeps matching runs",
			markup: `<p:sld><a:t>kept</a:t><a:t>broken<a:t>also kept</a:t`,
			want:   []string{"kept"},
		},
		{
			name:   "other a: elements ignored",
			markup: `<a:tab/><a:tbl><a:tr></a:tr></a:tbl>`,
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRuns([]byte(tt.markup)))
		})
	}
}

func TestProperties(t *testing.T) {
	path := pptxtest.Write(t, t.TempDir(), "deck.pptx", pptxtest.Deck{
		Title:   "Q3 Review",
		Creator: "Finance Team",
		Subject: "Results",
		Slides:  []pptxtest.Slide{{}, {}},
	})
	p, err := Open(path)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, Properties{Title: "Q3 Review", Creator: "Finance Team", Subject: "Results", Slides: 2}, p.Properties())
}
