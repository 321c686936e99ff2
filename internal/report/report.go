// Package report renders lint results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uplang/yamlint"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of text, json, yaml)", name)
}

// Summary counts what a run produced.
type Summary struct {
	Files       int `json:"files" yaml:"files"`
	Diagnostics int `json:"diagnostics" yaml:"diagnostics"`
	Fatal       int `json:"fatal" yaml:"fatal"`
}

// Summarize builds a Summary over reports.
func Summarize(reports []*yamlint.FileReport) Summary {
	s := Summary{Files: len(reports)}
	for _, r := range reports {
		s.Diagnostics += len(r.Diagnostics)
		if r.Fatal() {
			s.Fatal++
		}
	}
	return s
}

// HasErrors reports whether any file produced a diagnostic.
func (s Summary) HasErrors() bool {
	return s.Diagnostics > 0
}

type document struct {
	Files   []*yamlint.FileReport `json:"files" yaml:"files"`
	Summary Summary               `json:"summary" yaml:"summary"`
}

// Render writes reports to w in the given format.
func Render(w io.Writer, format Format, reports []*yamlint.FileReport) error {
	switch format {
	case FormatText:
		return renderText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(reports))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(reports)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newDocument(reports []*yamlint.FileReport) document {
	files := make([]*yamlint.FileReport, len(reports))
	for i, r := range reports {
		// Encode clean files as an empty list rather than null.
		if r.Diagnostics == nil {
			r = &yamlint.FileReport{Path: r.Path, Diagnostics: []yamlint.Diagnostic{}}
		}
		files[i] = r
	}
	return document{Files: files, Summary: Summarize(reports)}
}

func renderText(w io.Writer, reports []*yamlint.FileReport) error {
	for _, r := range reports {
		if !r.HasErrors() {
			if _, err := fmt.Fprintf(w, "%s: no errors found\n", r.Path); err != nil {
				return err
			}
			continue
		}
		for _, d := range r.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s:%d: %s [%s] %s\n", r.Path, d.Line, d.Severity, d.Code, d.Message); err != nil {
				return err
			}
		}
	}
	return nil
}
