// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
)

// Top-level failures stop a conversion before any slide is extracted.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDocument     = errors.New("no slides found in presentation")
	ErrUserCancelled     = errors.New("slide selection cancelled")
	ErrInvalidSelection  = errors.New("invalid slide selection")
)

// ErrLegacyFormat is returned for .ppt files and OLE2 binaries. It matches
// ErrUnsupportedFormat under errors.Is.
var ErrLegacyFormat = &legacyFormatError{}

type legacyFormatError struct{}

func (*legacyFormatError) Error() string {
	return "legacy .ppt format is not supported; open it in PowerPoint or LibreOffice and save it as .pptx, then convert again"
}

func (*legacyFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// Per-slide failures are recorded in that slide's outcome. ErrOutputWrite is
// fatal in merge mode only.
var (
	ErrSlideOutOfRange = errors.New("slide not found")
	ErrSlideExtraction = errors.New("slide extraction failed")
	ErrOutputWrite     = errors.New("writing output failed")
)

// slideRangeError reports a requested slide number outside the presentation.
// It matches ErrSlideOutOfRange under errors.Is.
type slideRangeError struct {
	slide, total int
}

func (e *slideRangeError) Error() string {
	return fmt.Sprintf("slide %d not found (presentation has %d slides)", e.slide, e.total)
}

func (*slideRangeError) Is(target error) bool {
	return target == ErrSlideOutOfRange
}
