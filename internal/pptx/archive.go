// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx reads the parts of an Office Open XML presentation package:
// slide and notes enumeration, text run extraction and document properties.
// A Package is read-only once opened and safe for concurrent ReadPart calls.
package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// presentationPart must exist in every presentation package.
const presentationPart = "ppt/presentation.xml"

var (
	// ErrNotPackage is returned when the input is not a zip container or
	// lacks the presentation layout.
	ErrNotPackage = errors.New("not a presentation package")

	// ErrLegacyBinary is returned for pre-XML binary presentations (OLE2
	// compound files).
	ErrLegacyBinary = errors.New("legacy binary presentation")

	// ErrPartNotFound is returned when a named part is absent from the package.
	ErrPartNotFound = errors.New("part not found")
)

// oleSignature is the magic number of OLE2 compound documents (.ppt, .doc, .xls).
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Package is an opened presentation container.
type Package struct {
	path  string
	rc    *zip.ReadCloser
	parts map[string]*zip.File
}

// Open opens the presentation at path. It fails with ErrLegacyBinary for
// OLE2 files and ErrNotPackage when the file is not a zip archive holding
// ppt/presentation.xml.
func Open(path string) (*Package, error) {
	legacy, err := hasOLESignature(path)
	if err != nil {
		return nil, err
	}
	if legacy {
		return nil, fmt.Errorf("%s: %w", path, ErrLegacyBinary)
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrNotPackage, err)
	}

	p := &Package{
		path:  path,
		rc:    rc,
		parts: make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		p.parts[f.Name] = f
	}

	if _, ok := p.parts[presentationPart]; !ok {
		rc.Close()
		return nil, fmt.Errorf("%s: %w: missing %s", path, ErrNotPackage, presentationPart)
	}
	return p, nil
}

// Close releases the underlying file.
func (p *Package) Close() error {
	return p.rc.Close()
}

// Path returns the filesystem path the package was opened from.
func (p *Package) Path() string { return p.path }

// PartNames returns all entry names in lexical order.
func (p *Package) PartNames() []string {
	names := make([]string, 0, len(p.parts))
	for name := range p.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasPart reports whether the named entry exists.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// ReadPart returns the decompressed contents of the named entry.
func (p *Package) ReadPart(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrPartNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func hasOLESignature(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, len(oleSignature))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return n == len(oleSignature) && bytes.Equal(head, oleSignature), nil
}
