// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidemd CLI, which converts a
// selected range of PowerPoint slides into structured Markdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidemd/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidemd CLI.
var rootCmd = &cobra.Command{
	Use:   "slidemd",
	Short: "Convert PowerPoint slide ranges to structured Markdown",
	Long: `slidemd reads a .pptx presentation, extracts the text of a chosen range of
slides and their speaker notes, recovers headings, lists and paragraphs, and
writes Markdown either as one merged document or one document per slide.

Use inspect to list slides and title hints, convert to write Markdown, and
preview to render the merged document as HTML without writing Markdown.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidemd.yaml or ~/.config/slidemd/config.yaml)")

	viper.SetDefault("convert.mode", string(types.ModeMerge))
	viper.SetDefault("convert.workers", 4)
	viper.SetDefault("convert.extra_markers", []string{})
	md := types.DefaultMarkdownConfig()
	viper.SetDefault("markdown.include_title", md.IncludeTitle)
	viper.SetDefault("markdown.include_source_notice", md.IncludeSourceNotice)
	viper.SetDefault("markdown.include_file_info", md.IncludeFileInfo)
	viper.SetDefault("markdown.include_metadata", md.IncludeMetadata)
	viper.SetDefault("markdown.include_section_separators", md.IncludeSectionSeparators)
	viper.SetDefault("markdown.include_frontmatter", md.IncludeFrontmatter)
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidemd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidemd"))
		}
	}

	viper.SetEnvPrefix("SLIDEMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the conversion settings from viper after flags, env and
// config file have been layered. Keys are read one by one so bound flags and
// env overrides apply to nested keys.
func loadConfig() (types.ConversionConfig, error) {
	cfg := types.ConversionConfig{
		Mode:         types.OutputMode(viper.GetString("convert.mode")),
		Workers:      viper.GetInt("convert.workers"),
		ExtraMarkers: viper.GetStringSlice("convert.extra_markers"),
		Markdown: types.MarkdownConfig{
			IncludeTitle:             viper.GetBool("markdown.include_title"),
			IncludeSourceNotice:      viper.GetBool("markdown.include_source_notice"),
			IncludeFileInfo:          viper.GetBool("markdown.include_file_info"),
			IncludeMetadata:          viper.GetBool("markdown.include_metadata"),
			IncludeSectionSeparators: viper.GetBool("markdown.include_section_separators"),
			IncludeFrontmatter:       viper.GetBool("markdown.include_frontmatter"),
		},
	}
	if cfg.Mode != "" && !cfg.Mode.Valid() {
		return cfg, fmt.Errorf("convert.mode must be %q or %q, got %q", types.ModeMerge, types.ModeSeparate, cfg.Mode)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
