// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
	"strings"
)

const (
	corePropsPart = "docProps/core.xml"
	appPropsPart  = "docProps/app.xml"
)

// Properties holds presentation metadata from docProps. Missing or
// unreadable property parts leave the fields empty.
type Properties struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Creator string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Slides  int    `json:"slides,omitempty" yaml:"slides,omitempty"`
}

type coreProps struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
	Subject string `xml:"subject"`
}

type appProps struct {
	Slides int `xml:"Slides"`
}

// Properties reads document properties from docProps/core.xml and
// docProps/app.xml.
func (p *Package) Properties() Properties {
	var props Properties

	if data, err := p.ReadPart(corePropsPart); err == nil {
		var core coreProps
		if xml.Unmarshal(data, &core) == nil {
			props.Title = strings.TrimSpace(core.Title)
			props.Creator = strings.TrimSpace(core.Creator)
			props.Subject = strings.TrimSpace(core.Subject)
		}
	}

	if data, err := p.ReadPart(appPropsPart); err == nil {
		var app appProps
		if xml.Unmarshal(data, &app) == nil {
			props.Slides = app.Slides
		}
	}

	return props
}
