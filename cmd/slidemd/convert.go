// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidemd/internal/convert"
	"github.com/pdiddy/slidemd/internal/watch"
	"github.com/pdiddy/slidemd/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [presentations...]",
	Short: "Convert a range of slides to Markdown",
	Long: `Convert extracts the selected slides of each presentation, structures their
text into headings, lists and paragraphs, and writes Markdown. In merge mode
all slides go into <name>_slides-<range>.md; in separate mode each slide is
written to <name>_Slides/<name>_slide-N.md.

Slides are chosen with --slides using numbers and ranges ("1-3, 5") or "all".
Slide numbers beyond the end of the presentation fail individually without
stopping the others.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("slides", "all", `slides to convert, e.g. "1-3, 5" or "all"`)
	convertCmd.Flags().String("mode", "", "output mode: merge or separate (default from config, else merge)")
	convertCmd.Flags().Int("workers", 0, "slides extracted in parallel (default from config, else 4)")
	convertCmd.Flags().String("out-dir", "", "output directory (default: next to each presentation)")
	convertCmd.Flags().String("report", "", "write the conversion result as YAML to this file")
	convertCmd.Flags().Bool("json", false, "print the conversion result as JSON to stdout")
	convertCmd.Flags().Bool("details", false, "print a per-slide summary after converting")
	convertCmd.Flags().Bool("watch", false, "convert again whenever the presentation is saved")

	_ = viper.BindPFlag("convert.mode", convertCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("convert.workers", convertCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	slides, _ := cmd.Flags().GetString("slides")
	outDir, _ := cmd.Flags().GetString("out-dir")
	reportPath, _ := cmd.Flags().GetString("report")
	asJSON, _ := cmd.Flags().GetBool("json")
	details, _ := cmd.Flags().GetBool("details")
	watching, _ := cmd.Flags().GetBool("watch")

	if (watching || reportPath != "") && len(args) > 1 {
		return fmt.Errorf("--watch and --report take a single presentation, got %d", len(args))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := convert.Options{Config: cfg, OutputDir: outDir}
	sel := convert.StaticSelector{Range: slides}

	// JSON owns stdout; progress moves to stderr.
	var progress io.Writer = os.Stdout
	if asJSON {
		progress = os.Stderr
	}

	run := func(ctx context.Context) error {
		if len(args) > 1 {
			batch := convert.ConvertBatch(ctx, args, sel, opts, progress)
			if asJSON {
				if err := printJSON(batch.Results); err != nil {
					return err
				}
			}
			if details {
				for _, r := range batch.Results {
					fmt.Print(convert.FormatDetails(r))
				}
			}
			if batch.HasFailures() {
				return fmt.Errorf("%d presentation(s) failed, %d partially converted", batch.Failed, batch.Partial)
			}
			return nil
		}

		result := convert.ConvertSlides(ctx, args[0], sel, opts, progress)
		return finishConvert(result, reportPath, asJSON, details)
	}

	ctx := cmd.Context()
	err = run(ctx)
	if !watching {
		return err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	w, werr := watch.New(args[0], watch.DefaultDebounce, os.Stderr)
	if werr != nil {
		return werr
	}
	fmt.Fprintf(os.Stderr, "watching %s (Ctrl-C to stop)\n", args[0])
	return w.Run(ctx, func() {
		if err := run(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	})
}

func finishConvert(result types.AggregateResult, reportPath string, asJSON, details bool) error {
	if reportPath != "" {
		if err := convert.WriteReport(reportPath, result); err != nil {
			return err
		}
	}
	if asJSON {
		if err := printJSON(result); err != nil {
			return err
		}
	}
	if details {
		fmt.Print(convert.FormatDetails(result))
	}

	switch {
	case result.Err != nil:
		return result.Err
	case !result.Success:
		return fmt.Errorf("no slides converted")
	case result.HasFailures():
		return fmt.Errorf("%d of %d slide(s) failed", result.Failed(), len(result.Outcomes))
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
