// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidemd/internal/pptx"
	"github.com/pdiddy/slidemd/pkg/types"
)

// DocumentInfo describes the document an information block is written for.
type DocumentInfo struct {
	// Title is the document heading, e.g. "deck" or "deck - Slide 3".
	Title       string
	FileName    string
	Size        int64
	Modified    time.Time
	Properties  pptx.Properties
	Slides      []int
	TotalSlides int
	Mode        types.OutputMode
}

// InfoBlock renders the header placed at the top of every output document.
type InfoBlock interface {
	Header(info DocumentInfo) string
}

// MarkdownInfoBlock is the default InfoBlock. Each section is switched on or
// off by its MarkdownConfig flag.
type MarkdownInfoBlock struct {
	Config types.MarkdownConfig
}

type frontmatter struct {
	Source      string           `yaml:"source"`
	Slides      []int            `yaml:"slides,flow"`
	TotalSlides int              `yaml:"total_slides"`
	Mode        types.OutputMode `yaml:"mode"`
}

// Header implements InfoBlock.
func (m MarkdownInfoBlock) Header(info DocumentInfo) string {
	cfg := m.Config
	var b strings.Builder

	if cfg.IncludeFrontmatter {
		fm, err := yaml.Marshal(frontmatter{
			Source:      info.FileName,
			Slides:      info.Slides,
			TotalSlides: info.TotalSlides,
			Mode:        info.Mode,
		})
		// A struct of strings and ints always marshals.
		if err == nil {
			b.WriteString("---\n")
			b.Write(fm)
			b.WriteString("---\n\n")
		}
	}

	if cfg.IncludeTitle {
		fmt.Fprintf(&b, "# %s\n\n", info.Title)
	}
	if cfg.IncludeSourceNotice {
		fmt.Fprintf(&b, "Converted from %s\n\n", info.FileName)
	}
	if (cfg.IncludeTitle || cfg.IncludeSourceNotice) && cfg.IncludeSectionSeparators {
		b.WriteString("---\n\n")
	}

	if cfg.IncludeFileInfo {
		b.WriteString("## File Information\n\n")
		fmt.Fprintf(&b, "- **File Name**: %s\n", info.FileName)
		fmt.Fprintf(&b, "- **File Size**: %s\n", formatFileSize(info.Size))
		fmt.Fprintf(&b, "- **Modified**: %s\n\n", info.Modified.Format("2006-01-02"))
	}

	if cfg.IncludeMetadata {
		b.WriteString(metadataBlock(info.Properties))
	}

	return b.String()
}

func metadataBlock(p pptx.Properties) string {
	var rows []string
	if p.Creator != "" {
		rows = append(rows, fmt.Sprintf("- **Author**: %s", p.Creator))
	}
	if p.Title != "" {
		rows = append(rows, fmt.Sprintf("- **Title**: %s", p.Title))
	}
	if p.Subject != "" {
		rows = append(rows, fmt.Sprintf("- **Subject**: %s", p.Subject))
	}
	if p.Slides > 0 {
		rows = append(rows, fmt.Sprintf("- **Slide Count**: %d", p.Slides))
	}
	if len(rows) == 0 {
		return ""
	}
	return "## Presentation Metadata\n\n" + strings.Join(rows, "\n") + "\n\n"
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// formatFileSize renders a byte count with up to two decimals: 1536 -> "1.5 KB".
func formatFileSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	i = min(i, len(sizeUnits)-1)
	v := math.Round(float64(n)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
