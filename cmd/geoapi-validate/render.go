package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opengeospatial/geoapi-conformance/conformance"
)

// result is the outcome of checking one file.
type result struct {
	Path    string
	LoadErr error // file could not be read or decoded
	Err     error // first conformance failure
}

func (r result) ok() bool { return r.LoadErr == nil && r.Err == nil }

// render formats one line per file followed by a summary. Failures are
// detailed on an indented line; verbose mode adds the failure kind.
func render(results []result, verbose bool) string {
	var sb strings.Builder
	passed := 0
	for _, r := range results {
		switch {
		case r.LoadErr != nil:
			fmt.Fprintf(&sb, "%s %s\n", errorStyle.Render("ERROR"), r.Path)
			sb.WriteString(detailStyle.Render(r.LoadErr.Error()) + "\n")
		case r.Err != nil:
			fmt.Fprintf(&sb, "%s  %s\n", failStyle.Render("FAIL"), r.Path)
			sb.WriteString(detailStyle.Render(describe(r.Err, verbose)) + "\n")
		default:
			passed++
			fmt.Fprintf(&sb, "%s  %s\n", passStyle.Render("PASS"), r.Path)
		}
	}
	summary := fmt.Sprintf("%d of %d files conformant", passed, len(results))
	if passed == len(results) {
		sb.WriteString("\n" + passStyle.Render(summary) + "\n")
	} else {
		sb.WriteString("\n" + failStyle.Render(summary) + "\n")
	}
	return sb.String()
}

func describe(err error, verbose bool) string {
	var f *conformance.Failure
	if !errors.As(err, &f) {
		return err.Error()
	}
	if !verbose {
		return f.Message
	}
	kind := "constraint"
	if conformance.IsMandatory(err) {
		kind = "mandatory"
	}
	return kindStyle.Render("["+kind+"]") + " " + f.Validator + ": " + f.Message
}
