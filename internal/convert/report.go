// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidemd/pkg/types"
)

// WriteReport saves result as YAML at path, creating parent directories.
func WriteReport(path string, result types.AggregateResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// FormatDetails summarizes result as Markdown: successful slides first,
// then failures with their errors.
func FormatDetails(result types.AggregateResult) string {
	var b strings.Builder

	if result.Error != "" {
		fmt.Fprintf(&b, "**Error**: %s\n\n", result.Error)
	}

	var ok, failed []types.SlideOutcome
	for _, o := range result.Outcomes {
		if o.Success {
			ok = append(ok, o)
		} else {
			failed = append(failed, o)
		}
	}

	if len(ok) > 0 {
		fmt.Fprintf(&b, "**Converted** (%d):\n", len(ok))
		for _, o := range ok {
			if o.Title != "" {
				fmt.Fprintf(&b, "- Slide %d: %s\n", o.SlideNumber, o.Title)
			} else {
				fmt.Fprintf(&b, "- Slide %d\n", o.SlideNumber)
			}
		}
		b.WriteString("\n")
	}

	if len(failed) > 0 {
		fmt.Fprintf(&b, "**Failed** (%d):\n", len(failed))
		for _, o := range failed {
			fmt.Fprintf(&b, "- Slide %d: %s\n", o.SlideNumber, o.Error)
		}
		b.WriteString("\n")
	}

	switch {
	case result.OutputPath != "":
		fmt.Fprintf(&b, "**Output**: %s\n", result.OutputPath)
	case result.OutputDirectory != "":
		fmt.Fprintf(&b, "**Output directory**: %s\n", result.OutputDirectory)
	}

	return b.String()
}
