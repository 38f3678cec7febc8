// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MarkdownConfig controls the information block written at the top of every
// rendered document.
type MarkdownConfig struct {
	// IncludeTitle writes "# <title>" as the first line.
	IncludeTitle bool `json:"include_title" yaml:"include_title" mapstructure:"include_title"`

	// IncludeSourceNotice writes a "Converted from <file>" line.
	IncludeSourceNotice bool `json:"include_source_notice" yaml:"include_source_notice" mapstructure:"include_source_notice"`

	// IncludeFileInfo writes the file name, size and modification date.
	IncludeFileInfo bool `json:"include_file_info" yaml:"include_file_info" mapstructure:"include_file_info"`

	// IncludeMetadata writes presentation properties (author, title, subject, slide count).
	IncludeMetadata bool `json:"include_metadata" yaml:"include_metadata" mapstructure:"include_metadata"`

	// IncludeSectionSeparators writes "---" rules between header sections.
	IncludeSectionSeparators bool `json:"include_section_separators" yaml:"include_section_separators" mapstructure:"include_section_separators"`

	// IncludeFrontmatter prepends YAML frontmatter describing the conversion.
	IncludeFrontmatter bool `json:"include_frontmatter" yaml:"include_frontmatter" mapstructure:"include_frontmatter"`
}

// DefaultMarkdownConfig enables every header section.
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		IncludeTitle:             true,
		IncludeSourceNotice:      true,
		IncludeFileInfo:          true,
		IncludeMetadata:          true,
		IncludeSectionSeparators: true,
		IncludeFrontmatter:       true,
	}
}

// ConversionConfig holds settings for a slide-range conversion.
type ConversionConfig struct {
	// Mode is the default output mode when the selector does not choose one.
	Mode OutputMode `json:"mode" yaml:"mode" mapstructure:"mode"`

	// Workers bounds parallel slide extraction (default 4, 1 means sequential).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// ExtraMarkers are added to the built-in discourse markers that keep a
	// run from being treated as a heading.
	ExtraMarkers []string `json:"extra_markers,omitempty" yaml:"extra_markers,omitempty" mapstructure:"extra_markers"`

	Markdown MarkdownConfig `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}
