// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidemd/internal/convert"
	"github.com/pdiddy/slidemd/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview <presentation>",
	Short: "Render the merged Markdown for a slide range as HTML",
	Long: `Preview assembles the merged Markdown document for the selected slides in
memory and renders it as sanitized HTML. No Markdown file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("slides", "all", `slides to preview, e.g. "1-3, 5" or "all"`)
	previewCmd.Flags().StringP("output", "o", "", "write HTML to this file instead of stdout")
	previewCmd.Flags().Bool("markdown", false, "print the Markdown instead of HTML")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	slides, _ := cmd.Flags().GetString("slides")
	output, _ := cmd.Flags().GetString("output")
	asMarkdown, _ := cmd.Flags().GetBool("markdown")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, result := convert.RenderMerged(cmd.Context(), args[0], convert.StaticSelector{Range: slides}, convert.Options{Config: cfg})
	if result.Err != nil {
		return result.Err
	}
	for _, o := range result.Outcomes {
		if !o.Success {
			fmt.Fprintf(os.Stderr, "failed:  slide %d (%s)\n", o.SlideNumber, o.Error)
		}
	}
	if !result.Success {
		return fmt.Errorf("no slides rendered")
	}

	out := []byte(doc)
	if !asMarkdown {
		title := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		out = render.Page(title, out)
	}

	if output == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("writing preview %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", output)
	return nil
}
