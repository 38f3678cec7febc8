// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidemd/internal/convert"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <presentation>",
	Short: "List the slides and title hints of a presentation",
	Long: `Inspect opens a presentation with the same checks convert applies and
prints the slide count, the number of notes parts and a title hint per slide.
It warns when a slide's speaker notes relationship disagrees with the
positional notes association convert uses.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the inventory as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	info, err := convert.Inspect(args[0])
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(info)
	}

	fmt.Printf("%s: %d slide(s), %d notes part(s)\n", info.FileName, info.TotalSlides, info.NotesParts)
	if p := info.Properties; p.Title != "" || p.Creator != "" {
		fmt.Printf("title: %q  author: %q\n", p.Title, p.Creator)
	}
	fmt.Println()
	for _, s := range info.Slides {
		hint := s.TitleHint
		if hint == "" {
			hint = "(no title)"
		}
		fmt.Printf("%4d  %s\n", s.Index, hint)
	}

	if len(info.NotesMismatch) > 0 {
		fmt.Fprintf(os.Stderr, "\nwarning: speaker notes may be attached to the wrong slide for slides %s\n",
			convert.FormatRange(info.NotesMismatch))
	}
	return nil
}
